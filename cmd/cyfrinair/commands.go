package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/cyfrinair/cyfrinair-go/internal/crypto"
	"github.com/cyfrinair/cyfrinair-go/internal/model"
	"github.com/cyfrinair/cyfrinair-go/internal/service"
	"github.com/cyfrinair/cyfrinair-go/internal/wordlist"
)

// Build information, set via ldflags.
var Version = "dev"

func app() *cli.App {
	return &cli.App{
		Name:    "cyfrinair",
		Usage:   "generate passwords and passphrases",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "wordlist",
				Usage:   "Hunspell .dic file to draw passphrase words from",
				EnvVars: []string{"WORDLIST_PATH"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print a JSON array instead of one secret per line",
			},
		},
		Commands: []*cli.Command{
			passwordCommand(),
			passphraseCommand(),
			guidCommand(),
		},
	}
}

func quantityFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Value:   service.DefaultQuantity,
		Usage:   fmt.Sprintf("number of secrets to generate (1-%d)", crypto.MaxQuantity),
	}
}

func passwordCommand() *cli.Command {
	defaults := crypto.DefaultPasswordOptions()
	return &cli.Command{
		Name:    "password",
		Aliases: []string{"pw"},
		Usage:   "Generate random passwords",
		Flags: []cli.Flag{
			quantityFlag(),
			&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Value: defaults.Length, Usage: "password length"},
			&cli.BoolFlag{Name: "digits", Value: defaults.IncludeDigits, Usage: "include digits"},
			&cli.BoolFlag{Name: "symbols", Value: defaults.IncludeSymbols, Usage: "include symbols"},
			&cli.BoolFlag{Name: "ambiguous", Value: defaults.IncludeAmbiguousChars, Usage: "include easily confused characters"},
		},
		Action: func(c *cli.Context) error {
			svc, err := newService(c)
			if err != nil {
				return err
			}
			passwords, err := svc.Passwords(model.PasswordRequest{
				Quantity:  ptr(c.Int("count")),
				Length:    ptr(c.Int("length")),
				Digits:    ptr(c.Bool("digits")),
				Symbols:   ptr(c.Bool("symbols")),
				Ambiguous: ptr(c.Bool("ambiguous")),
			})
			if err != nil {
				return err
			}
			return printSecrets(c, passwords)
		},
	}
}

func passphraseCommand() *cli.Command {
	defaults := crypto.DefaultPassphraseOptions()
	return &cli.Command{
		Name:    "passphrase",
		Aliases: []string{"pp"},
		Usage:   "Generate random Welsh passphrases",
		Flags: []cli.Flag{
			quantityFlag(),
			&cli.IntFlag{Name: "words", Aliases: []string{"w"}, Value: defaults.Words, Usage: "words per passphrase"},
			&cli.StringFlag{Name: "separator", Aliases: []string{"s"}, Value: string(defaults.Separator), Usage: "character between words"},
			&cli.StringFlag{Name: "casing", Value: defaults.Casing.String(), Usage: "upper, lower or random"},
			&cli.StringFlag{Name: "digit", Value: defaults.DigitPlacement.String(), Usage: "once, none or every"},
		},
		Action: func(c *cli.Context) error {
			svc, err := newService(c)
			if err != nil {
				return err
			}
			phrases, err := svc.Passphrases(model.PassphraseRequest{
				Quantity:  ptr(c.Int("count")),
				Words:     ptr(c.Int("words")),
				Separator: ptr(c.String("separator")),
				Casing:    ptr(c.String("casing")),
				Digit:     ptr(c.String("digit")),
			})
			if err != nil {
				return err
			}
			return printSecrets(c, phrases)
		},
	}
}

func guidCommand() *cli.Command {
	return &cli.Command{
		Name:  "guid",
		Usage: "Generate a random GUID",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintln(c.App.Writer, uuid.NewString())
			return err
		},
	}
}

func newService(c *cli.Context) (*service.GeneratorService, error) {
	words := wordlist.Default()
	if path := c.String("wordlist"); path != "" {
		custom, err := wordlist.Load(path)
		if err != nil {
			return nil, err
		}
		words = custom
	}
	return service.NewGeneratorService(words, nil), nil
}

func printSecrets(c *cli.Context, secrets []string) error {
	if c.Bool("json") {
		return json.NewEncoder(c.App.Writer).Encode(secrets)
	}
	for _, s := range secrets {
		if _, err := fmt.Fprintln(c.App.Writer, s); err != nil {
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
