package core

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Static backend id and color tables. The creation form derives its option
// sets from these maps, so the offered and recognized sets cannot drift.
var (
	providerIDs = map[string]int{
		"FACEBOOK":  1,
		"INSTAGRAM": 2,
		"TWITTER":   3,
		"PINTEREST": 4,
		"LINKEDIN":  5,
	}

	postTypeIDs = map[PostType]int{
		PostTypeText:    1,
		PostTypeImage:   2,
		PostTypeMessage: 3,
	}

	providerColors = map[string]string{
		"FACEBOOK":  "#1877F2",
		"INSTAGRAM": "#E1306C",
		"TWITTER":   "#1DA1F2",
		"PINTEREST": "#BD081C",
		"LINKEDIN":  "#0A66C2",
	}

	memberRoles = map[string]string{
		"TEAM_MEMBER":     "Miembro del equipo",
		"ANALYST":         "Analista",
		"EDITOR":          "Editor",
		"MANAGER":         "Gerente",
		"CONTENT_CREATOR": "Creador de contenido",
		"CLIENT":          "Cliente",
		"GUEST":           "Invitado",
	}
)

// DefaultColor is used for providers missing from the color table. Unknown
// providers still render, just undistinguished.
const DefaultColor = "#CCCCCC"

func ProviderID(name string) (int, bool) {
	id, ok := providerIDs[strings.ToUpper(name)]
	return id, ok
}

func PostTypeID(postType PostType) (int, bool) {
	id, ok := postTypeIDs[postType]
	return id, ok
}

func ProviderColor(name string) string {
	if color, ok := providerColors[strings.ToUpper(name)]; ok {
		return color
	}
	return DefaultColor
}

// ProviderNames lists the selectable providers in backend id order.
func ProviderNames() []string {
	names := lo.Keys(providerIDs)
	sort.Slice(names, func(i, j int) bool {
		return providerIDs[names[i]] < providerIDs[names[j]]
	})
	return names
}

// PostTypeNames lists the selectable post types in backend id order.
func PostTypeNames() []PostType {
	types := lo.Keys(postTypeIDs)
	sort.Slice(types, func(i, j int) bool {
		return postTypeIDs[types[i]] < postTypeIDs[types[j]]
	})
	return types
}

func ValidRole(role string) bool {
	_, ok := memberRoles[role]
	return ok
}

func RoleLabel(role string) string {
	if label, ok := memberRoles[role]; ok {
		return label
	}
	return role
}

func RoleNames() []string {
	names := lo.Keys(memberRoles)
	sort.Strings(names)
	return names
}
