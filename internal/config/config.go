// Package config loads the immutable startup configuration (§6
// "Configuration") from YAML using gopkg.in/yaml.v3 and translates it into
// a *core.Config, following the corpus's own layered default/file
// configuration pattern.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mx-scissortail/wasdwm/internal/core"
)

//go:embed default.yaml
var defaultYAML []byte

// commandRegistry maps the YAML "command" strings to core.CommandFunc
// values; internal/config is the only package that needs to know both the
// string vocabulary and the concrete functions.
var commandRegistry = map[string]core.CommandFunc{
	"view_tag":                    core.CmdViewTag,
	"toggle_tag_view":             core.CmdToggleTagView,
	"cycle_view":                  core.CmdCycleView,
	"shift_tag":                   core.CmdShiftTag,
	"tag_client":                  core.CmdTagClient,
	"toggle_tag":                  core.CmdToggleTag,
	"set_layout":                  core.CmdSetLayout,
	"adjust_marked_width":         core.CmdAdjustMarkedWidth,
	"set_marked_width":            core.CmdSetMarkedWidth,
	"cycle_focus":                 core.CmdCycleFocus,
	"cycle_stackarea_selection":   core.CmdCycleStackareaSelection,
	"push_client_left":            core.CmdPushClientLeft,
	"push_client_right":           core.CmdPushClientRight,
	"focus_client":                core.CmdFocusClient,
	"toggle_floating":             core.CmdToggleFloating,
	"toggle_fullscreen":           core.CmdToggleFullscreen,
	"toggle_mark":                 core.CmdToggleMark,
	"hide_window":                 core.CmdHideWindow,
	"toggle_hidden":               core.CmdToggleHidden,
	"kill_client":                 core.CmdKillClient,
	"toggle_tagbar":               core.CmdToggleTagBar,
	"set_clientbar_mode":          core.CmdSetClientBarMode,
	"cycle_focus_monitor":         core.CmdCycleFocusMonitor,
	"send_to_monitor":             core.CmdSendToMonitor,
	"drag_window":                 core.CmdDragWindow,
	"resize_with_mouse":           core.CmdResizeWithMouse,
	"spawn":                       core.CmdSpawn,
	"quit":                        core.CmdQuit,
}

var clickRegistry = map[string]core.Click{
	"tagbar":      core.ClickTagBar,
	"layoutsym":   core.ClickLayoutSymbol,
	"status":      core.ClickStatusText,
	"wintitle":    core.ClickWinTitle,
	"client":      core.ClickClientWin,
	"root":        core.ClickRootWin,
	"clientbar":   core.ClickClientBar,
}

var layoutRegistry = map[string]*core.Layout{
	"tile":     core.TileLayout,
	"deck":     core.DeckLayout,
	"monocle":  core.MonocleLayout,
	"floating": core.FloatingLayout,
}

// Load reads path (falling back to the embedded default if path is empty
// or does not exist) and builds a *core.Config. A tag list exceeding
// core.NumTags entries is a load error; a negative rule monitor index is
// dropped with a logged warning rather than failing the load, and an index
// with no matching monitor is ignored when the rule is applied (§7
// "Configuration errors").
func Load(path string) (*core.Config, error) {
	data := defaultYAML
	if path != "" {
		if fileData, err := os.ReadFile(path); err == nil {
			data = fileData
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var raw RawConfig
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if path != "" {
		var defaults RawConfig
		if err := yaml.Unmarshal(defaultYAML, &defaults); err != nil {
			return nil, fmt.Errorf("parse embedded default config: %w", err)
		}
		raw = defaults.merge(raw)
	}

	return build(raw)
}

func build(raw RawConfig) (*core.Config, error) {
	if len(raw.Tags) > core.NumTags {
		return nil, fmt.Errorf("config: %d tags exceeds the %d-tag budget", len(raw.Tags), core.NumTags)
	}

	cfg := &core.Config{}
	for i, t := range raw.Tags {
		cfg.Tags[i] = t
	}
	for i := len(raw.Tags); i < core.NumTags; i++ {
		cfg.Tags[i] = strconv.Itoa(i + 1)
	}

	if err := buildSchemes(cfg, raw.Colors); err != nil {
		return nil, err
	}

	cfg.BorderWidthTiled = intOr(raw.BorderWidthTiled, 1)
	cfg.BorderWidthFloating = intOr(raw.BorderWidthFloating, 1)
	cfg.SnapPixels = intOr(raw.SnapPixels, 32)

	cfg.ShowTagBar = boolOr(raw.ShowTagBar, true)
	cfg.TagsOnTop = boolOr(raw.TagsOnTop, true)
	cfg.FollowNewWindows = boolOr(raw.FollowNewWindows, true)
	cfg.ViewTagToggles = boolOr(raw.ViewTagToggles, true)
	cfg.HideInactiveTags = boolOr(raw.HideInactiveTags, false)
	cfg.ResizeHints = boolOr(raw.ResizeHints, false)
	cfg.HideBuriedWindows = boolOr(raw.HideBuriedWindows, false)

	cfg.ClientBarModeDefault = parseClientBarMode(raw.ClientBarMode)
	cfg.MarkedWidth = floatOr(raw.MarkedWidth, 0.5)
	if cfg.MarkedWidth <= 0.05 || cfg.MarkedWidth >= 0.95 {
		cfg.MarkedWidth = 0.5
	}

	if len(raw.Layouts) == 0 {
		raw.Layouts = []string{"tile", "deck", "monocle", "floating"}
	}
	for _, name := range raw.Layouts {
		l, ok := layoutRegistry[name]
		if !ok {
			slog.Warn("config: unknown layout, skipping", "layout", name)
			continue
		}
		cfg.Layouts = append(cfg.Layouts, l)
	}

	buildDefLayouts(cfg, raw)
	buildRules(cfg, raw.Rules)

	if err := buildKeys(cfg, raw.Keys); err != nil {
		return nil, err
	}
	buildMouse(cfg, raw.Mouse)

	return cfg, nil
}

func buildSchemes(cfg *core.Config, colors map[string]rawColorScheme) error {
	names := map[string]core.SchemeName{
		"normal":    core.SchemeNormal,
		"selected":  core.SchemeSelected,
		"visible":   core.SchemeVisible,
		"minimized": core.SchemeMinimized,
		"urgent":    core.SchemeUrgent,
	}
	for name, idx := range names {
		raw, ok := colors[name]
		if !ok {
			continue
		}
		fg, err := parseHexColor(raw.Fg)
		if err != nil {
			return fmt.Errorf("config: colors.%s.fg: %w", name, err)
		}
		bg, err := parseHexColor(raw.Bg)
		if err != nil {
			return fmt.Errorf("config: colors.%s.bg: %w", name, err)
		}
		border, err := parseHexColor(raw.Border)
		if err != nil {
			return fmt.Errorf("config: colors.%s.border: %w", name, err)
		}
		cfg.Schemes[idx] = core.ColorScheme{Fg: fg, Bg: bg, Border: border}
	}
	return nil
}

func parseHexColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseClientBarMode(s *string) core.ClientBarMode {
	if s == nil {
		return core.ClientBarAuto
	}
	switch *s {
	case "never":
		return core.ClientBarNever
	case "always":
		return core.ClientBarAlways
	default:
		return core.ClientBarAuto
	}
}

func buildDefLayouts(cfg *core.Config, raw RawConfig) {
	// Default: all-tag and every per-tag slot points at layout indices
	// (0, 2) — tile primary, monocle secondary — matching default.yaml.
	primary, secondary := 0, 0
	if len(cfg.Layouts) > 2 {
		secondary = 2
	}
	for i := range cfg.DefLayouts {
		cfg.DefLayouts[i] = [2]int{primary, secondary}
	}

	tagIndex := func(label string) int {
		if label == "*" {
			return 0
		}
		for i, t := range cfg.Tags {
			if t == label {
				return i + 1
			}
		}
		return -1
	}
	layoutIndex := func(name string) int {
		for i, l := range cfg.Layouts {
			if l.Symbol == layoutRegistry[name].Symbol {
				return i
			}
		}
		return -1
	}

	for _, d := range raw.DefLayouts {
		slot := tagIndex(d.Tag)
		if slot < 0 || slot >= len(cfg.DefLayouts) {
			continue
		}
		p := layoutIndex(d.Primary)
		s := layoutIndex(d.Secondary)
		if p < 0 {
			p = cfg.DefLayouts[slot][0]
		}
		if s < 0 {
			s = cfg.DefLayouts[slot][1]
		}
		cfg.DefLayouts[slot] = [2]int{p, s}
	}
}

func buildRules(cfg *core.Config, raws []rawRule) {
	for _, r := range raws {
		var tags uint32
		for _, t := range r.Tags {
			if t >= 1 && t <= core.NumTags {
				tags |= 1 << uint(t-1)
			}
		}
		mon := -1
		if r.Monitor != nil {
			if *r.Monitor < 0 {
				slog.Warn("config: rule has invalid monitor index, ignoring placement", "monitor", *r.Monitor)
			} else {
				mon = *r.Monitor
			}
		}
		cfg.Rules = append(cfg.Rules, core.Rule{
			Class:      r.Class,
			Instance:   r.Instance,
			Title:      r.Title,
			Tags:       tags,
			IsFloating: r.IsFloating,
			Monitor:    mon,
		})
	}
}

func buildKeys(cfg *core.Config, raws []rawBinding) error {
	for _, k := range raws {
		mod, keysym, err := parseBindingString(k.Key)
		if err != nil {
			return fmt.Errorf("config: key %q: %w", k.Key, err)
		}
		cmd, ok := commandRegistry[k.Command]
		if !ok {
			return fmt.Errorf("config: key %q: unknown command %q", k.Key, k.Command)
		}
		cfg.KeyBindings = append(cfg.KeyBindings, core.KeyBinding{
			Mod:    mod,
			Keysym: keysym,
			Cmd:    cmd,
			Arg:    normalizeArg(k.Arg),
		})
	}
	return nil
}

func buildMouse(cfg *core.Config, raws []rawMouseBinding) {
	for _, m := range raws {
		click, ok := clickRegistry[m.Click]
		if !ok {
			slog.Warn("config: unknown click region, skipping mouse binding", "click", m.Click)
			continue
		}
		cmd, ok := commandRegistry[m.Command]
		if !ok {
			slog.Warn("config: unknown command, skipping mouse binding", "command", m.Command)
			continue
		}
		mod := parseModifiers(m.Mods)
		cfg.MouseBindings = append(cfg.MouseBindings, core.MouseBinding{
			Click:  click,
			Mod:    mod,
			Button: m.Button,
			Cmd:    cmd,
			Arg:    normalizeArg(m.Arg),
		})
	}
}

// parseBindingString parses strings like "Mod4-Shift-Return" into a
// modifier mask and keysym.
func parseBindingString(s string) (uint16, uint32, error) {
	parts := strings.Split(s, "-")
	if len(parts) == 0 {
		return 0, 0, fmt.Errorf("empty binding")
	}
	keyPart := parts[len(parts)-1]
	mod := parseModifiers(strings.Join(parts[:len(parts)-1], "-"))

	if sym, ok := namedKeysyms[keyPart]; ok {
		return mod, sym, nil
	}
	if len(keyPart) == 1 {
		if sym, ok := keysymForRune(rune(keyPart[0])); ok {
			return mod, sym, nil
		}
	}
	return 0, 0, fmt.Errorf("unrecognized key %q", keyPart)
}

func parseModifiers(s string) uint16 {
	var mask uint16
	for _, tok := range strings.Split(s, "-") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		mask |= modifierBits[tok]
	}
	return mask
}

// normalizeArg converts YAML-decoded scalars/sequences into the concrete
// Go types core commands expect (float64 deltas, []string argv,
// core.ClientBarMode, or plain int/nil). YAML integers stay int; no
// argument is converted to a uint32 tag mask, so the tag-mask commands
// reject integer arguments from the config file.
func normalizeArg(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case int:
		return val
	case float64:
		return val
	case []interface{}:
		argv := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				argv = append(argv, s)
			}
		}
		return argv
	case string:
		switch val {
		case "cycle":
			return core.ClientBarModeCycle
		case "never":
			return core.ClientBarNever
		case "always":
			return core.ClientBarAlways
		case "auto":
			return core.ClientBarAuto
		}
		return val
	default:
		return val
	}
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
