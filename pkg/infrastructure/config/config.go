package config

import "github.com/spf13/viper"

// Config is the planner's file configuration. Every field can be overridden
// through GROCER_-prefixed environment variables, and the CLI flags override
// both.
type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Data struct {
		GroceryWorkbook string `mapstructure:"grocery_workbook"`
		StockWorkbook   string `mapstructure:"stock_workbook"`
		ScenarioDir     string `mapstructure:"scenario_dir"`
		HouseholdFile   string `mapstructure:"household_file"`
	} `mapstructure:"data"`

	Planner struct {
		RequireCategoryCoverage bool    `mapstructure:"require_category_coverage"`
		Tolerance               float64 `mapstructure:"tolerance"`
	} `mapstructure:"planner"`

	Output struct {
		Format string
		Path   string
	} `mapstructure:"output"`
}

// Load reads the config file at path, or just defaults and environment when
// path is empty
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GROCER")
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("planner.require_category_coverage", true)
	v.SetDefault("planner.tolerance", 1e-6)
	v.SetDefault("output.format", "text")

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
