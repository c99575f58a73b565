package nodes

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/connormcn37/pipe-graph/pkg/ports"
	"github.com/connormcn37/pipe-graph/pkg/registry"
)

// RegisterBuiltins installs every node kind of this package into the
// registry, under these names: constant, oscillator, solid, brightness,
// scale, passthrough, crop, channel_clear, channel_split, channel_merge.
// Chain is not registered; it composes in code, not from parameters.
func RegisterBuiltins(reg *registry.Registry) {
	reg.Register("constant", constantFactory)
	reg.Register("oscillator", oscillatorFactory)
	reg.Register("solid", solidFactory)
	reg.Register("brightness", brightnessFactory)
	reg.Register("scale", scaleFactory)
	reg.Register("passthrough", passthroughFactory)
	reg.Register("crop", cropFactory)
	reg.Register("channel_clear", channelClearFactory)
	reg.Register("channel_split", channelSplitFactory)
	reg.Register("channel_merge", channelMergeFactory)
}

func constantFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Value float64 `mapstructure:"value"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode constant params: %w", err)
	}
	return NewConstant(cfg.Value), nil
}

func oscillatorFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Shape string  `mapstructure:"shape"`
		Freq  float64 `mapstructure:"freq"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode oscillator params: %w", err)
	}
	if cfg.Shape == "" {
		cfg.Shape = "sine"
	}
	shape, err := ParseWaveform(cfg.Shape)
	if err != nil {
		return nil, err
	}
	return NewOscillator(shape, cfg.Freq), nil
}

func solidFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Width    int `mapstructure:"width"`
		Height   int `mapstructure:"height"`
		Channels int `mapstructure:"channels"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode solid params: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Channels <= 0 {
		return nil, fmt.Errorf("solid dimensions must be positive, got %dx%dx%d",
			cfg.Width, cfg.Height, cfg.Channels)
	}
	return NewSolidSource(cfg.Width, cfg.Height, cfg.Channels), nil
}

func brightnessFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Factor float64 `mapstructure:"factor"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode brightness params: %w", err)
	}
	return NewBrightness(cfg.Factor), nil
}

func scaleFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Factor float64 `mapstructure:"factor"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scale params: %w", err)
	}
	return NewScale(cfg.Factor), nil
}

func passthroughFactory(map[string]any) (ports.NodeLogic, error) {
	return NewPassthrough(), nil
}

func cropFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		X      int `mapstructure:"x"`
		Y      int `mapstructure:"y"`
		Width  int `mapstructure:"width"`
		Height int `mapstructure:"height"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode crop params: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("crop rectangle must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	return NewCrop(cfg.X, cfg.Y, cfg.Width, cfg.Height), nil
}

func channelClearFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Channel int `mapstructure:"channel"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode channel_clear params: %w", err)
	}
	return NewChannelClear(cfg.Channel), nil
}

func channelSplitFactory(params map[string]any) (ports.NodeLogic, error) {
	var cfg struct {
		Channel int `mapstructure:"channel"`
	}
	if err := mapstructure.Decode(params, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode channel_split params: %w", err)
	}
	return NewChannelSplit(cfg.Channel), nil
}

func channelMergeFactory(map[string]any) (ports.NodeLogic, error) {
	return NewChannelMerge(), nil
}
