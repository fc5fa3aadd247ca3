package metrics

import "strings"

func FlattenName(name string) string {
	replacer := strings.NewReplacer(" ", "_", ".", "_", "-", "_", "=", "_", "/", "_")
	return replacer.Replace(name)
}

func BuildFQName(names ...string) string {
	return FlattenName(strings.Join(names, "_"))
}
