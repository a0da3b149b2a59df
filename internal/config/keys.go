package config

import (
	"strings"

	"github.com/spf13/viper"
)

type configKeyVariant struct {
	canonical string
	camel     string
}

// configKeyVariants lists every config key with its camelCase spelling, so
// config files written either way resolve to the same setting.
var configKeyVariants = []configKeyVariant{
	{canonical: "title"},
	{canonical: "profile"},
	{canonical: "terminal_mode", camel: "terminalMode"},
	{canonical: "initial_focus", camel: "initialFocus"},
	{canonical: "log_level", camel: "logLevel"},
	{canonical: "persist"},
	{canonical: "discard_on_cancel", camel: "discardOnCancel"},
	{canonical: "clear_focus_on_discard", camel: "clearFocusOnDiscard"},
	{canonical: "min_width", camel: "minWidth"},
	{canonical: "min_height", camel: "minHeight"},
	{canonical: "label_width", camel: "labelWidth"},
}

func registerConfigKeyAliases(v *viper.Viper) {
	for _, variant := range configKeyVariants {
		if variant.camel != "" {
			v.RegisterAlias(variant.camel, variant.canonical)
		}
		// flags spell underscores as dashes
		if dashed := strings.ReplaceAll(variant.canonical, "_", "-"); dashed != variant.canonical {
			v.RegisterAlias(dashed, variant.canonical)
		}
	}
	// the --terminal flag maps to terminal_mode
	v.RegisterAlias("terminal", "terminal_mode")
}
