// Package config loads settings from environment variables into tagged
// structs.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for parsing:
//
//	type Settings struct {
//	    AlertBox   string `env:"ALERT_BOX" envDefault:"#alert"`
//	    AlertColor string `env:"ALERT_COLOR" envDefault:"#f00"`
//	}
//
//	if err := config.LoadEnv("./.env.local"); err != nil {
//	    log.Fatal(err)
//	}
//
//	var s Settings
//	config.MustLoad(&s, config.WithPrefix("FORMVALIDATE_"))
//
// The default .env in the working directory is loaded once, silently, the
// first time Load runs. Values already set in the process environment are
// never overwritten by .env files.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors so they can be matched with
// errors.Is: ErrParsingConfig, ErrLoadingEnvFile, ErrNilPointer.
package config
