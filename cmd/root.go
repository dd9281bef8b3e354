package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/career-compass/internal/recommend"
)

const (
	app       = "career-compass"
	envPrefix = "CAREER_COMPASS"
)

type Config struct {
	Datasets  *DatasetsConfig  `mapstructure:"datasets"`
	Recommend *RecommendConfig `mapstructure:"recommend"`
	AI        *AIConfig        `mapstructure:"ai"`
	Export    *ExportConfig    `mapstructure:"export"`
}

type DatasetsConfig struct {
	Jobs    string `mapstructure:"jobs"`
	Courses string `mapstructure:"courses"`
}

type RecommendConfig struct {
	MatchMode   string `mapstructure:"match-mode"`
	JobLimit    int    `mapstructure:"job-limit"`
	CourseLimit int    `mapstructure:"course-limit"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-compass asks a few questions about you and suggests jobs and courses",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults(viper.GetViper())

	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-compass.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	rootCmd.PersistentFlags().String("jobs", "", "jobs dataset (.csv or .xlsx)")
	rootCmd.PersistentFlags().String("courses", "", "courses dataset (.csv or .xlsx)")
	rootCmd.PersistentFlags().String("match-mode", "", "job matching mode: reference or strict")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("datasets.jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	viper.BindPFlag("datasets.courses", rootCmd.PersistentFlags().Lookup("courses"))
	viper.BindPFlag("recommend.match-mode", rootCmd.PersistentFlags().Lookup("match-mode"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("datasets.jobs", "job_descriptions.csv")
	v.SetDefault("datasets.courses", "courses_data.csv")
	v.SetDefault("recommend.match-mode", string(recommend.ModeReference))
	v.SetDefault("recommend.job-limit", recommend.DefaultLimit)
	v.SetDefault("recommend.course-limit", recommend.DefaultLimit)
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "")
	v.SetDefault("ai.gemini.max-retries", 3)
	v.SetDefault("ai.gemini.max-log-length", 200)
	v.SetDefault("export.dir", ".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func initConfig() {
	// A missing .env is fine, a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		log.Fatal(err)
	}
}

// readConfig reads an explicit config file or, when none is given, an optional
// career-compass.yaml from the current directory.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}

	v.AddConfigPath(".")
	v.SetConfigName(app)
	v.SetConfigType("yaml")

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	err := v.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Datasets == nil {
		config.Datasets = &DatasetsConfig{}
	}
	if config.Recommend == nil {
		config.Recommend = &RecommendConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Export == nil {
		config.Export = &ExportConfig{}
	}

	return config, nil
}
