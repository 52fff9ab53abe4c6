// Package cmd implements the mny command line application to format,
// compute and convert money.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/monetary"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&currenciesCmd{}, "money")
	c.Register(&formatCmd{}, "money")
	c.Register(&calcCmd{}, "money")
	c.Register(&convertCmd{}, "money")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	localeFlag   = flag.String("locale", "", "Culture used to format amounts (e.g. nl-NL). Defaults to $"+EnvLocale+".")
	currencyFlag = flag.String("currency", "", "Default currency code for bare amounts. Defaults to $"+EnvCurrency+", then to the locale's currency.")
	Verbose      = flag.Bool("v", false, "Print verbose logs.")
)

// Settings are the global settings once flags, environment and config file
// are merged. Flags win over the environment, which wins over the config file.
type Settings struct {
	Locale   string
	Currency string
	Verbose  bool
}

var settings Settings

// Configure merges the global flags with the environment and the optional
// .mny.yaml config file, and returns a context carrying the selected culture.
// It must be called after flag.Parse.
func Configure(ctx context.Context) (context.Context, error) {
	if err := loadEnv(); err != nil {
		return ctx, err
	}

	v, err := newViper()
	if err != nil {
		return ctx, err
	}
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	settings = resolveSettings(v, explicit)
	if !settings.Verbose {
		log.SetOutput(io.Discard)
	}
	if f := configFile(v); f != "" {
		log.Printf("using config file %s", f)
	}

	culture, err := monetary.ParseCulture(settings.Locale)
	if err != nil {
		return ctx, fmt.Errorf("invalid -locale: %w", err)
	}
	log.Printf("using culture %q, default currency %q", culture.Name(), settings.Currency)
	return monetary.WithCulture(ctx, culture), nil
}

// loadEnv loads the .env file of the current directory, if there is one.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	return nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("MNY")
	v.AutomaticEnv()
	v.SetDefault("locale", "")
	v.SetDefault("currency", "")
	v.SetDefault("verbose", false)

	v.SetConfigName(".mny")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}
	return v, nil
}

// resolveSettings returns the settings from v, overridden by the flags that
// were explicitly set on the command line.
func resolveSettings(v *viper.Viper, explicit map[string]bool) Settings {
	s := Settings{
		Locale:   v.GetString("locale"),
		Currency: v.GetString("currency"),
		Verbose:  v.GetBool("verbose"),
	}
	if explicit["locale"] {
		s.Locale = *localeFlag
	}
	if explicit["currency"] {
		s.Currency = *currencyFlag
	}
	if explicit["v"] {
		s.Verbose = *Verbose
	}
	return s
}

// defaultCurrency is the currency of amounts written without a code.
func defaultCurrency(ctx context.Context) (monetary.Currency, error) {
	if settings.Currency != "" {
		return monetary.FromCode(settings.Currency)
	}
	c, err := monetary.CultureFrom(ctx).Currency()
	if err != nil {
		return monetary.Currency{}, fmt.Errorf("no default currency, use -currency or -locale: %w", err)
	}
	return c, nil
}

// configFile returns the config file in use, if any.
func configFile(v *viper.Viper) string {
	if f := v.ConfigFileUsed(); f != "" {
		return filepath.Clean(f)
	}
	return ""
}
