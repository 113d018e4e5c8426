package config

import (
	"errors"
	"strings"

	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/andareed/siftly-datazoom/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and
// broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader reads cfgFile when given, otherwise looks for sfzoom.yaml in the
// XDG config dir and the working directory. changes may be nil, in which case
// the file is not watched.
func NewLoader(cfgFile string, changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}

	dz := datazoom.Default()
	loader.SetDefault("datazoom.show", true)
	loader.SetDefault("datazoom.type", dz.Type.String())
	loader.SetDefault("datazoom.filter_mode", dz.FilterMode.String())
	loader.SetDefault("datazoom.orient", dz.Orient.String())
	loader.SetDefault("datazoom.x_axis_index", dz.XAxisIndex)
	loader.SetDefault("datazoom.y_axis_index", dz.YAxisIndex)
	loader.SetDefault("datazoom.show_data_shadow", dz.ShowDataShadow)
	loader.SetDefault("datazoom.show_detail", dz.ShowDetail)
	loader.SetDefault("datazoom.zoom_lock", dz.ZoomLock)
	loader.SetDefault("datazoom.realtime", dz.Realtime)
	loader.SetDefault("datazoom.background_color", dz.BackgroundColor.Hex())
	loader.SetDefault("datazoom.height", dz.Height)
	loader.SetDefault("datazoom.bottom", dz.Bottom)
	loader.SetDefault("datazoom.range_mode", dz.RangeMode.String())
	loader.SetDefault("datazoom.start", dz.Start)
	loader.SetDefault("datazoom.end", dz.End)
	loader.SetDefault("datazoom.scroll_sensitivity", dz.ScrollSensitivity)
	loader.SetDefault("time_column", "time")
	loader.SetDefault("value_column", "")
	loader.SetDefault("sheet", "")
	loader.SetDefault("pan_step", DefaultPanStep)

	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.SetConfigType("yaml")
		loader.AddConfigPath(Dir())
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	return &loader
}

// Watch reloads the config on every write and sends it to the changes
// channel. It must be called after a successful Read.
func (cl *Loader) Watch() {
	if cl.changes == nil {
		return
	}
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
		return
	}

	logging.Infof("config: external reload triggered by %s", in.Name)
	config, err := cl.Read()
	if err != nil {
		logging.Warnf("config: reload failed: %v", err)

		return
	}

	cl.changes <- config
}

// Read loads the config. A missing default config file is not an error, the
// defaults apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigDecode)
	}

	return config, nil
}
