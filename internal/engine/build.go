// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package engine assembles the pure-logic packages (tag, gravity, screen,
// grab, focus, layer, hook) into the single running window manager
// process, and builds that assembly from a loaded config.Config.
package engine

import (
	"fmt"
	"regexp"
	"strings"

	"tilewm/internal/config"
	"tilewm/internal/grab"
	"tilewm/internal/gravity"
	"tilewm/internal/screen"
	"tilewm/internal/tag"
	"tilewm/internal/wmcore"
)

// Built is the output of translating a config.Config into the core's
// runtime types, keyed so later lookups (a tag's gravity name, a view's
// tag names) can resolve by name.
type Built struct {
	Gravities    []*gravity.Gravity
	GravityByName map[string]wmcore.ID

	Tags      []*tag.Tag
	TagByName map[string]wmcore.ID

	Views []*screen.View

	Grabs *grab.Table
}

// BuildGravities translates every `gravity name, [x,y,w,h], tile?`
// declaration into gravity.Gravity values. Unlike tags, gravities have no
// reserved id - the always-present default is a tag concept, not a
// gravity one.
func BuildGravities(cfgs []config.Gravity) ([]*gravity.Gravity, map[string]wmcore.ID) {
	out := make([]*gravity.Gravity, 0, len(cfgs))
	byName := make(map[string]wmcore.ID, len(cfgs))
	for i, g := range cfgs {
		grv := &gravity.Gravity{
			ID: wmcore.ID(i), Quark: g.Name,
			RelX: g.X, RelY: g.Y, RelW: g.W, RelH: g.H,
		}
		switch g.Direction {
		case "horizontal":
			grv.Horz = true
		case "vertical":
			grv.Vert = true
		}
		out = append(out, grv)
		byName[g.Name] = grv.ID
	}
	return out, byName
}

// BuildTags translates every `tag name, matcher_spec` declaration into
// tag.Tag values. Tag id 0 is always the reserved default tag: if the
// config doesn't declare one, an empty synthetic default is prepended so
// ids still start at the reserved slot.
func BuildTags(cfgs []config.Tag, gravityByName map[string]wmcore.ID) ([]*tag.Tag, map[string]wmcore.ID, error) {
	decls := cfgs
	if len(decls) == 0 || decls[0].Name != "default" {
		decls = append([]config.Tag{{Name: "default"}}, cfgs...)
	}

	out := make([]*tag.Tag, 0, len(decls))
	byName := make(map[string]wmcore.ID, len(decls))
	for i, td := range decls {
		t := &tag.Tag{ID: wmcore.ID(i), Name: td.Name, Stick: td.Stick}
		for _, m := range td.Matchers {
			tm, err := buildMatcher(m)
			if err != nil {
				return nil, nil, fmt.Errorf("tag %q: %w", td.Name, err)
			}
			t.Matchers = append(t.Matchers, tm)
		}
		t.ModeFlags = modeFlagsOf(td)
		if td.Gravity != "" {
			if id, ok := gravityByName[td.Gravity]; ok {
				t.GravityID = &id
			}
		}
		if len(td.Geometry) == 4 {
			r := wmcore.Rect{X: td.Geometry[0], Y: td.Geometry[1], W: td.Geometry[2], H: td.Geometry[3]}
			t.Geometry = &r
		}
		out = append(out, t)
		byName[td.Name] = t.ID
	}
	return out, byName, nil
}

func modeFlagsOf(td config.Tag) wmcore.ClientFlag {
	var f wmcore.ClientFlag
	if td.Full {
		f |= wmcore.FlagFull
	}
	if td.Borderless {
		f |= wmcore.FlagBorderless
	}
	if td.Center {
		f |= wmcore.FlagCenter
	}
	if td.Fixed {
		f |= wmcore.FlagFixed
	}
	if td.Resize {
		f |= wmcore.FlagResize
	}
	if td.Urgent {
		f |= wmcore.FlagUrgent
	}
	if td.Zaphod {
		f |= wmcore.FlagZaphod
	}
	if td.Float {
		f |= wmcore.FlagFloat
	}
	return f
}

// buildMatcher compiles one config.Matcher into a single-link tag.Matcher.
// The TOML config shape carries one field-set/pattern pair per entry
// rather than an arbitrary AND-chain depth; multiple entries in
// Tag.Matchers are themselves an OR list, and a matcher naming more than
// one field tests them with the same name>instance>class>role priority
// selectedField already implements. Tag-AND-chains (regex-plus-regex on
// the same tag) are not representable in the TOML shape and are out of
// scope for the config loader; to build a chain, a caller constructs
// *tag.Matcher directly and links AndChain before calling BuildTags.
func buildMatcher(m config.Matcher) (*tag.Matcher, error) {
	var flags tag.Field
	for _, f := range m.Fields {
		switch strings.ToLower(f) {
		case "name":
			flags |= tag.FieldName
		case "instance":
			flags |= tag.FieldInstance
		case "class":
			flags |= tag.FieldClass
		case "role":
			flags |= tag.FieldRole
		case "type":
			flags |= tag.FieldType
		default:
			return nil, fmt.Errorf("unknown matcher field %q", f)
		}
	}
	out := &tag.Matcher{Flags: flags}
	if flags&tag.FieldType != 0 {
		tf, err := typeFlagOf(m.Pattern)
		if err != nil {
			return nil, err
		}
		out.TypeFlag = tf
		return out, nil
	}
	if m.Pattern != "" {
		re, err := regexp.Compile(m.Pattern)
		if err != nil {
			return nil, fmt.Errorf("bad matcher pattern %q: %w", m.Pattern, err)
		}
		out.Regex = re
	}
	return out, nil
}

// typeFlagOf maps a type matcher's pattern to the window-type bit it
// tests for.
func typeFlagOf(name string) (wmcore.ClientFlag, error) {
	switch strings.ToLower(name) {
	case "normal":
		return wmcore.FlagTypeNormal, nil
	case "desktop":
		return wmcore.FlagTypeDesktop, nil
	case "dock":
		return wmcore.FlagTypeDock, nil
	case "toolbar":
		return wmcore.FlagTypeToolbar, nil
	case "splash":
		return wmcore.FlagTypeSplash, nil
	case "dialog":
		return wmcore.FlagTypeDialog, nil
	}
	return 0, fmt.Errorf("unknown window type %q in type matcher", name)
}

// BuildViews translates every `view name, tags...` declaration, resolving
// named tags to their bitmask union.
func BuildViews(cfgs []config.View, tagByName map[string]wmcore.ID, tags []*tag.Tag) []*screen.View {
	out := make([]*screen.View, 0, len(cfgs))
	for i, vd := range cfgs {
		v := &screen.View{ID: wmcore.ID(i), Name: vd.Name, Icon: vd.Icon}
		for _, tn := range vd.Tags {
			if id, ok := tagByName[tn]; ok && int(id) < len(tags) {
				v.Tags |= tags[id].Bit()
			}
		}
		if vd.Dynamic {
			v.Flags |= screen.ViewDynamic
		}
		if vd.IconOnly {
			v.Flags |= screen.ViewIconOnly
		}
		out = append(out, v)
	}
	return out
}

// actionFlag maps a built-in action name to a grab Flag and, where the
// name encodes an argument (ViewJump3, WindowResizeLeft), the Data it
// should carry.
func actionFlag(name string, arg string) (grab.Flag, grab.Data, error) {
	switch {
	case name == "ViewNext":
		return grab.FlagViewSwap, grab.Data{Int: +1}, nil
	case name == "ViewPrev":
		return grab.FlagViewSwap, grab.Data{Int: -1}, nil
	case strings.HasPrefix(name, "ViewJump"):
		n, err := indexSuffix(name, "ViewJump")
		return grab.FlagViewFocus, grab.Data{Int: n}, err
	case strings.HasPrefix(name, "ViewSwitch"):
		n, err := indexSuffix(name, "ViewSwitch")
		return grab.FlagViewSwap, grab.Data{Int: n}, err
	case strings.HasPrefix(name, "ScreenJump"):
		n, err := indexSuffix(name, "ScreenJump")
		return grab.FlagScreenJump, grab.Data{Int: n}, err
	case strings.HasPrefix(name, "WindowMove"):
		return grab.FlagWindowMove, grab.Data{Str: strings.TrimPrefix(name, "WindowMove")}, nil
	case strings.HasPrefix(name, "WindowResize"):
		return grab.FlagWindowResize, grab.Data{Str: strings.TrimPrefix(name, "WindowResize")}, nil
	case name == "WindowFloat":
		return grab.FlagWindowToggle, grab.Data{Int: int(wmcore.FlagFloat)}, nil
	case name == "WindowFull":
		return grab.FlagWindowToggle, grab.Data{Int: int(wmcore.FlagFull)}, nil
	case name == "WindowStick":
		return grab.FlagWindowToggle, grab.Data{Int: int(wmcore.FlagStick)}, nil
	case name == "WindowZaphod":
		return grab.FlagWindowToggle, grab.Data{Int: int(wmcore.FlagZaphod)}, nil
	case name == "WindowRaise":
		return grab.FlagWindowStack, grab.Data{Int: +1}, nil
	case name == "WindowLower":
		return grab.FlagWindowStack, grab.Data{Int: -1}, nil
	case name == "WindowLeft":
		return grab.FlagWindowSelect, grab.Data{Int: int(grab.DirLeft)}, nil
	case name == "WindowRight":
		return grab.FlagWindowSelect, grab.Data{Int: int(grab.DirRight)}, nil
	case name == "WindowUp":
		return grab.FlagWindowSelect, grab.Data{Int: int(grab.DirUp)}, nil
	case name == "WindowDown":
		return grab.FlagWindowSelect, grab.Data{Int: int(grab.DirDown)}, nil
	case name == "WindowKill":
		return grab.FlagWindowKill, grab.Data{}, nil
	case name == "WindowGravity":
		// Data.Str carries the gravity cycle sequence as comma-separated
		// gravity names, e.g. "left,right"; Execute forwards it verbatim
		// to WindowRuntime.CycleGravity, which resolves each name and
		// steps through them in order.
		return grab.FlagWindowGravity, grab.Data{Str: arg}, nil
	case name == "SubtleReload":
		return grab.FlagSubtleReload, grab.Data{}, nil
	case name == "SubtleRestart":
		return grab.FlagSubtleRestart, grab.Data{}, nil
	case name == "SubtleQuit":
		return grab.FlagSubtleQuit, grab.Data{}, nil
	}
	return 0, grab.Data{}, fmt.Errorf("unknown grab action %q", name)
}

func indexSuffix(name, prefix string) (int, error) {
	suffix := strings.TrimPrefix(name, prefix)
	var n int
	if _, err := fmt.Sscanf(suffix, "%d", &n); err != nil {
		return 0, fmt.Errorf("action %q: expected a trailing number", name)
	}
	return n, nil
}

// BuildGrabs translates every `grab chain_string => action|callback`
// declaration into a sorted grab.Table. resolver turns
// a key token's name into its numeric keycode; spawn/callback actions
// carry their data verbatim.
func BuildGrabs(cfgs []config.Grab, resolver grab.KeycodeResolver) (*grab.Table, error) {
	var top []*grab.Grab
	for _, gd := range cfgs {
		g, err := buildGrab(gd, resolver)
		if err != nil {
			return nil, err
		}
		top = append(top, g)
	}
	return grab.NewTable(top), nil
}

func buildGrab(gd config.Grab, resolver grab.KeycodeResolver) (*grab.Grab, error) {
	tokens, err := grab.ParseChain(gd.Chain)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("grab: empty chain string")
	}
	code, state, err := tokens[0].Resolve(resolver)
	if err != nil {
		return nil, err
	}
	g := &grab.Grab{Code: code, State: state, IsButton: tokens[0].IsButton()}

	if len(gd.Links) > 0 {
		g.Flags = grab.FlagChainStart
		for _, link := range gd.Links {
			lg, err := buildGrab(link, resolver)
			if err != nil {
				return nil, err
			}
			if len(link.Links) == 0 {
				lg.Flags |= grab.FlagChainEnd
			} else {
				lg.Flags |= grab.FlagChainLink
			}
			g.Chain = append(g.Chain, lg)
		}
		return g, nil
	}

	if gd.Callback != "" {
		g.Flags = grab.FlagCallback
		return g, nil
	}
	flag, data, err := actionFlag(gd.Action, gd.Arg)
	if err != nil {
		return nil, err
	}
	g.Flags = flag
	g.Data = data
	return g, nil
}
