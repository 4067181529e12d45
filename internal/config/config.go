// Package config loads the book-list configuration for a compilation run.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

// BookConfig names one book and its workbook file.
type BookConfig struct {
	ID       string `mapstructure:"id"`
	Workbook string `mapstructure:"workbook"`
	// Default marks the book the site serves when none is named.
	Default bool `mapstructure:"default"`
}

// Config is the full compiler configuration.
type Config struct {
	// TotalPages is the page ceiling applied to every book.
	TotalPages int `mapstructure:"total_pages"`
	// AnswerKeyTemplate formats fallback answer key URLs.
	AnswerKeyTemplate string `mapstructure:"answer_key_template"`
	// Output is the artifact path the compiler writes.
	Output string `mapstructure:"output"`
	// Books lists the books to compile, in compilation order.
	Books []BookConfig `mapstructure:"books"`
}

// Load reads configuration from cfgFile, or from books.yaml in the
// working directory or ~/.triviaforge when cfgFile is empty. Environment
// variables with the TRIVIAFORGE_ prefix override file values. A missing
// config file is not an error; it just yields defaults and no books.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("total_pages", models.DefaultTotalPages)
	v.SetDefault("answer_key_template", models.DefaultAnswerKeyTemplate)
	v.SetDefault("output", "catalog.json")

	v.SetEnvPrefix("TRIVIAFORGE")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("books")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.triviaforge")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
