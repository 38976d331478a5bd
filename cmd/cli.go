// Package cmd builds the soundcorectl command-line application: pairing,
// connecting, reading and writing settings, and managing quick presets
// against the device control core.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"

	"github.com/soundcore-go/soundcore-core/config"
	"github.com/soundcore-go/soundcore-core/devicemodel"
	"github.com/soundcore-go/soundcore-core/persistence"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/soundcore"
	"github.com/soundcore-go/soundcore-core/transport"
	"github.com/soundcore-go/soundcore-core/transport/demo"
	"github.com/soundcore-go/soundcore-core/wire"
)

// Version and Revision are set at build time via -ldflags.
var (
	Version  = "develop"
	Revision = "unknown"
)

// Run builds and executes the soundcorectl CLI against os.Args.
func Run() error {
	return newApp().Run(os.Args)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "soundcorectl",
		Usage:                "pair, connect to, and configure Soundcore headphones",
		Version:              fmt.Sprintf("%s (%s)", Version, Revision),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				EnvVars: []string{"SOUNDCORECTL_DB"},
				Usage:   "path to the persisted device/preset store",
			},
			&cli.BoolFlag{
				Name:    "demo",
				EnvVars: []string{"SOUNDCORECTL_DEMO"},
				Usage:   "use the in-memory demo backend instead of a real adapter",
				Value:   true,
			},
			&cli.BoolFlag{
				Name:    "no-color",
				EnvVars: []string{"SOUNDCORECTL_NO_COLOR"},
				Usage:   "disable colored warning/error output",
			},
		},
		Before: func(cliCtx *cli.Context) error {
			color.NoColor = cliCtx.Bool("no-color")
			return nil
		},
		Commands: []*cli.Command{
			discoverCommand(),
			pairCommand(),
			unpairCommand(),
			devicesCommand(),
			categoriesCommand(),
			settingsCommand(),
			getCommand(),
			setCommand(),
			presetCommand(),
		},
		ExitErrHandler: func(_ *cli.Context, err error) {
			if err == nil {
				return
			}
			printError(err)
		},
	}
}

// loadConfig merges the on-disk soundcorectl.conf with cliCtx's flags,
// the same hjson-file-plus-cliflagv2 layering the teacher app uses.
func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	cliCtx.Command.Name = "global"

	k, cfg := koanf.New("."), config.NewConfig()
	if err := cfg.Load(k, cliCtx); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession opens the session façade backing every command. Until a
// real RFCOMM backend is wired in, --demo (the default) binds it to the
// in-memory demo backend (§9 "Demo mode"); no command's logic changes
// when a real backend replaces it, since every command is written
// against soundcore.Session and transport.Backend.
func openSession(ctx context.Context, cliCtx *cli.Context) (*soundcore.Session, error) {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Values.DBPath
	if dbPath == "" {
		dbPath = cfg.DefaultDBPath()
	}

	if !cfg.Values.Demo {
		return nil, fmt.Errorf("no non-demo transport backend is configured")
	}

	backend := &demo.Backend{
		Descriptor: transport.ConnectionDescriptor{Name: "Demo Headphones"},
		StatePacket: wire.Packet{
			Command: [2]byte{0x01, 0x01},
		},
	}
	return soundcore.Open(ctx, dbPath, backend, nil)
}

func discoverCommand() *cli.Command {
	return &cli.Command{
		Name:  "discover",
		Usage: "list peers visible to the transport backend",
		Action: func(cliCtx *cli.Context) error {
			ctx := context.Background()
			session, err := openSession(ctx, cliCtx)
			if err != nil {
				return err
			}
			defer session.Close()

			peers, err := session.Discover(ctx)
			if err != nil {
				return err
			}
			for _, p := range peers {
				fmt.Printf("%s\t%s\n", macString(p.Mac), p.Name)
			}
			return nil
		},
	}
}

func pairCommand() *cli.Command {
	return &cli.Command{
		Name:      "pair",
		Usage:     "persist a device's identity without connecting",
		ArgsUsage: "<mac>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Required: true, Usage: "device model, e.g. A3028"},
			&cli.StringFlag{Name: "name", Usage: "display name to store"},
			&cli.BoolFlag{Name: "demo", Usage: "mark this pairing as bound to the in-memory demo transport"},
		},
		Action: func(cliCtx *cli.Context) error {
			mac, err := parseMac(cliCtx.Args().First())
			if err != nil {
				return err
			}

			ctx := context.Background()
			session, err := openSession(ctx, cliCtx)
			if err != nil {
				return err
			}
			defer session.Close()

			name := cliCtx.String("name")
			if name == "" {
				name = cliCtx.Args().First()
			}

			return session.Pair(ctx, mac, devicemodel.Model(cliCtx.String("model")), name, cliCtx.Bool("demo"))
		},
	}
}

func unpairCommand() *cli.Command {
	return &cli.Command{
		Name:      "unpair",
		Usage:     "disconnect (if connected) and forget a paired device",
		ArgsUsage: "<mac>",
		Action: func(cliCtx *cli.Context) error {
			mac, err := parseMac(cliCtx.Args().First())
			if err != nil {
				return err
			}

			ctx := context.Background()
			session, err := openSession(ctx, cliCtx)
			if err != nil {
				return err
			}
			defer session.Close()

			return session.Unpair(ctx, mac)
		},
	}
}

func devicesCommand() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "list paired devices",
		Action: func(cliCtx *cli.Context) error {
			ctx := context.Background()
			session, err := openSession(ctx, cliCtx)
			if err != nil {
				return err
			}
			defer session.Close()

			paired, err := session.PairedDevices(ctx)
			if err != nil {
				return err
			}
			printPairedDevices(paired)
			return nil
		},
	}
}

func printPairedDevices(paired []persistence.PairedDevice) {
	for _, d := range paired {
		fmt.Printf("%s\t%s\t%s\tdemo=%t\n", d.Mac, d.Model, d.Name, d.Demo)
	}
}

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:      "categories",
		Usage:     "list the setting categories a connected device exposes",
		ArgsUsage: "<mac>",
		Action: func(cliCtx *cli.Context) error {
			return withConnectedDevice(cliCtx, func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error {
				dev, err := session.Connect(ctx, mac, nil)
				if err != nil {
					return err
				}
				for _, c := range dev.Categories() {
					fmt.Println(c)
				}
				return nil
			})
		},
	}
}

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:      "settings",
		Usage:     "list the setting ids in a category",
		ArgsUsage: "<mac> <category>",
		Action: func(cliCtx *cli.Context) error {
			category := settings.Category(cliCtx.Args().Get(1))
			return withConnectedDevice(cliCtx, func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error {
				dev, err := session.Connect(ctx, mac, nil)
				if err != nil {
					return err
				}
				for _, id := range dev.SettingsInCategory(category) {
					fmt.Println(id)
				}
				return nil
			})
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "read the current value of a setting",
		ArgsUsage: "<mac> <id>",
		Action: func(cliCtx *cli.Context) error {
			id := settings.Id(cliCtx.Args().Get(1))
			return withConnectedDevice(cliCtx, func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error {
				dev, err := session.Connect(ctx, mac, nil)
				if err != nil {
					return err
				}
				s, err := dev.Setting(id)
				if err != nil {
					return err
				}
				fmt.Println(formatSetting(s))
				return nil
			})
		},
	}
}

func setCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "write a new value for a setting",
		ArgsUsage: "<mac> <id> <value>",
		Action: func(cliCtx *cli.Context) error {
			id := settings.Id(cliCtx.Args().Get(1))
			raw := cliCtx.Args().Get(2)
			return withConnectedDevice(cliCtx, func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error {
				dev, err := session.Connect(ctx, mac, nil)
				if err != nil {
					return err
				}
				current, err := dev.Setting(id)
				if err != nil {
					return err
				}
				value, err := parseValue(current, raw)
				if err != nil {
					return err
				}
				return dev.SetSettingValues(ctx, map[settings.Id]settings.Value{id: value})
			})
		},
	}
}

func presetCommand() *cli.Command {
	return &cli.Command{
		Name:  "preset",
		Usage: "manage quick presets",
		Subcommands: []*cli.Command{
			{
				Name:      "save",
				Usage:     "snapshot every writable setting under a preset name, all fields initially disabled",
				ArgsUsage: "<mac> <name>",
				Action: func(cliCtx *cli.Context) error {
					name := cliCtx.Args().Get(1)
					return withConnectedDevice(cliCtx, func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error {
						if _, err := session.Connect(ctx, mac, nil); err != nil {
							return err
						}
						return session.SaveQuickPreset(ctx, mac, name)
					})
				},
			},
			{
				Name:      "enable",
				Usage:     "toggle a single field's enable bit on a saved preset",
				ArgsUsage: "<mac> <name> <id> <true|false>",
				Action: func(cliCtx *cli.Context) error {
					mac, err := parseMac(cliCtx.Args().First())
					if err != nil {
						return err
					}
					name := cliCtx.Args().Get(1)
					id := settings.Id(cliCtx.Args().Get(2))
					enabled := cliCtx.Args().Get(3) == "true"

					ctx := context.Background()
					session, err := openSession(ctx, cliCtx)
					if err != nil {
						return err
					}
					defer session.Close()
					return session.ToggleQuickPresetField(ctx, mac, name, id, enabled)
				},
			},
			{
				Name:      "activate",
				Usage:     "apply a saved preset to a connected device",
				ArgsUsage: "<mac> <name>",
				Action: func(cliCtx *cli.Context) error {
					name := cliCtx.Args().Get(1)
					return withConnectedDevice(cliCtx, func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error {
						if _, err := session.Connect(ctx, mac, nil); err != nil {
							return err
						}
						return session.ActivateQuickPreset(ctx, mac, name)
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "remove a saved preset",
				ArgsUsage: "<mac> <name>",
				Action: func(cliCtx *cli.Context) error {
					name := cliCtx.Args().Get(1)
					mac, err := parseMac(cliCtx.Args().First())
					if err != nil {
						return err
					}
					ctx := context.Background()
					session, err := openSession(ctx, cliCtx)
					if err != nil {
						return err
					}
					defer session.Close()
					return session.DeleteQuickPreset(ctx, mac, name)
				},
			},
			{
				Name:      "list",
				Usage:     "list the preset names saved for a device",
				ArgsUsage: "<mac>",
				Action: func(cliCtx *cli.Context) error {
					mac, err := parseMac(cliCtx.Args().First())
					if err != nil {
						return err
					}
					ctx := context.Background()
					session, err := openSession(ctx, cliCtx)
					if err != nil {
						return err
					}
					defer session.Close()

					names, err := session.QuickPresets(ctx, mac)
					if err != nil {
						return err
					}
					for _, n := range names {
						fmt.Println(n)
					}
					return nil
				},
			},
		},
	}
}

// withConnectedDevice opens the session, parses mac from the command's
// first argument, runs fn, and closes the session on the way out.
func withConnectedDevice(cliCtx *cli.Context, fn func(ctx context.Context, session *soundcore.Session, mac transport.MacAddress) error) error {
	mac, err := parseMac(cliCtx.Args().First())
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := openSession(ctx, cliCtx)
	if err != nil {
		return err
	}
	defer session.Close()

	return fn(ctx, session, mac)
}

func parseMac(s string) (transport.MacAddress, error) {
	var mac transport.MacAddress
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return mac, fmt.Errorf("invalid mac address %q", s)
	}
	for i, part := range parts {
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return mac, fmt.Errorf("invalid mac address %q: %w", s, err)
		}
		mac[i] = byte(b)
	}
	return mac, nil
}

func macString(mac transport.MacAddress) string {
	parts := make([]string, len(mac))
	for i, b := range mac {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}

func formatSetting(s settings.Setting) string {
	switch s.Kind {
	case settings.KindToggle:
		return strconv.FormatBool(s.BoolValue)
	case settings.KindI32Range:
		return strconv.FormatInt(int64(s.I32Value), 10)
	case settings.KindSelect, settings.KindModifiableSelect:
		return s.SelectValue
	case settings.KindOptionalSelect:
		if s.OptionalValue == nil {
			return "(none)"
		}
		return *s.OptionalValue
	case settings.KindMultiSelect:
		return strings.Join(s.MultiValues, ",")
	case settings.KindEqualizer:
		parts := make([]string, len(s.EqValue))
		for i, v := range s.EqValue {
			parts[i] = strconv.FormatInt(int64(v), 10)
		}
		return strings.Join(parts, ",")
	case settings.KindInformation:
		return s.InfoValue
	default:
		return ""
	}
}

// parseValue interprets raw against current's Kind, so the caller never
// has to know a setting's shape ahead of time.
func parseValue(current settings.Setting, raw string) (settings.Value, error) {
	switch current.Kind {
	case settings.KindToggle:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return settings.Value{}, err
		}
		return settings.BoolValue(b), nil
	case settings.KindI32Range:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return settings.Value{}, err
		}
		return settings.I32Value(int32(n)), nil
	case settings.KindSelect, settings.KindModifiableSelect:
		return settings.EnumValue(raw), nil
	case settings.KindOptionalSelect:
		if raw == "" || raw == "none" {
			return settings.OptionalStringValue(nil), nil
		}
		return settings.OptionalStringValue(&raw), nil
	case settings.KindMultiSelect:
		return settings.StringVecValue(strings.Split(raw, ",")), nil
	case settings.KindEqualizer:
		fields := strings.Split(raw, ",")
		values := make([]int16, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 16)
			if err != nil {
				return settings.Value{}, err
			}
			values[i] = int16(n)
		}
		return settings.I16VecValue(values), nil
	default:
		return settings.Value{}, fmt.Errorf("setting is read-only")
	}
}
