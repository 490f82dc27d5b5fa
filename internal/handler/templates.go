package handler

import (
	"embed"
	"html/template"
	"strings"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const inventoryTemplateName = "inventory.html"

// bungieAssetHost prefixes manifest icon paths
const bungieAssetHost = "https://www.bungie.net"

// ParseTemplates loads the embedded page templates
func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"field": field,
		"icon":  iconURL,
	}).ParseFS(templateFS, "templates/*.html")
}

// field reads a display field from an enriched record
func field(item domain.VaultItem, key string) string {
	s, _ := item[key].(string)
	return s
}

func iconURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return bungieAssetHost + path
}
