package config

// rawColorScheme is the YAML shape of one (fg, bg, border) triple, each an
// RGB hex string like "#1f3f1f".
type rawColorScheme struct {
	Fg     string `yaml:"fg"`
	Bg     string `yaml:"bg"`
	Border string `yaml:"border"`
}

type rawRule struct {
	Class      string `yaml:"class"`
	Instance   string `yaml:"instance"`
	Title      string `yaml:"title"`
	Tags       []int  `yaml:"tags"`
	IsFloating bool   `yaml:"floating"`
	Monitor    *int   `yaml:"monitor"`
}

type rawBinding struct {
	Key     string      `yaml:"key"`
	Command string      `yaml:"command"`
	Arg     interface{} `yaml:"arg"`
}

type rawMouseBinding struct {
	Click   string      `yaml:"click"`
	Button  int         `yaml:"button"`
	Mods    string      `yaml:"mods"`
	Command string      `yaml:"command"`
	Arg     interface{} `yaml:"arg"`
}

type rawPertagDefault struct {
	Tag       string `yaml:"tag"` // "*" for the all-tags default, else a tag label
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

// RawConfig is the top-level YAML document shape (§6 "Configuration",
// §10.4). Every field is optional; missing fields keep the embedded
// default's value, following the corpus's layered
// default/builtin/file-config pattern.
type RawConfig struct {
	Tags []string `yaml:"tags"`

	Colors map[string]rawColorScheme `yaml:"colors"`

	BorderWidthTiled    *int `yaml:"border_width_tiled"`
	BorderWidthFloating *int `yaml:"border_width_floating"`
	SnapPixels          *int `yaml:"snap_pixels"`

	ShowTagBar        *bool `yaml:"show_tagbar"`
	TagsOnTop         *bool `yaml:"tags_on_top"`
	FollowNewWindows  *bool `yaml:"follow_new_windows"`
	ViewTagToggles    *bool `yaml:"view_tag_toggles"`
	HideInactiveTags  *bool `yaml:"hide_inactive_tags"`
	ResizeHints       *bool `yaml:"resize_hints"`
	HideBuriedWindows *bool `yaml:"hide_buried_windows"`

	ClientBarMode *string  `yaml:"client_bar_mode"`
	MarkedWidth   *float64 `yaml:"marked_width"`

	Rules []rawRule `yaml:"rules"`

	Layouts     []string           `yaml:"layouts"`
	DefLayouts  []rawPertagDefault `yaml:"default_layouts"`

	Keys  []rawBinding      `yaml:"keys"`
	Mouse []rawMouseBinding `yaml:"mouse"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c
	if overlay.Tags != nil {
		out.Tags = overlay.Tags
	}
	if overlay.Colors != nil {
		if out.Colors == nil {
			out.Colors = map[string]rawColorScheme{}
		}
		for k, v := range overlay.Colors {
			out.Colors[k] = v
		}
	}
	if overlay.BorderWidthTiled != nil {
		out.BorderWidthTiled = overlay.BorderWidthTiled
	}
	if overlay.BorderWidthFloating != nil {
		out.BorderWidthFloating = overlay.BorderWidthFloating
	}
	if overlay.SnapPixels != nil {
		out.SnapPixels = overlay.SnapPixels
	}
	if overlay.ShowTagBar != nil {
		out.ShowTagBar = overlay.ShowTagBar
	}
	if overlay.TagsOnTop != nil {
		out.TagsOnTop = overlay.TagsOnTop
	}
	if overlay.FollowNewWindows != nil {
		out.FollowNewWindows = overlay.FollowNewWindows
	}
	if overlay.ViewTagToggles != nil {
		out.ViewTagToggles = overlay.ViewTagToggles
	}
	if overlay.HideInactiveTags != nil {
		out.HideInactiveTags = overlay.HideInactiveTags
	}
	if overlay.ResizeHints != nil {
		out.ResizeHints = overlay.ResizeHints
	}
	if overlay.HideBuriedWindows != nil {
		out.HideBuriedWindows = overlay.HideBuriedWindows
	}
	if overlay.ClientBarMode != nil {
		out.ClientBarMode = overlay.ClientBarMode
	}
	if overlay.MarkedWidth != nil {
		out.MarkedWidth = overlay.MarkedWidth
	}
	if overlay.Rules != nil {
		out.Rules = overlay.Rules
	}
	if overlay.Layouts != nil {
		out.Layouts = overlay.Layouts
	}
	if overlay.DefLayouts != nil {
		out.DefLayouts = overlay.DefLayouts
	}
	if overlay.Keys != nil {
		out.Keys = overlay.Keys
	}
	if overlay.Mouse != nil {
		out.Mouse = overlay.Mouse
	}
	return out
}
