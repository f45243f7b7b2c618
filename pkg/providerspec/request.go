package providerspec

// requestDirectives builds the statements of a request block: header ops,
// then JSON body ops (set, del, rename), then raw extras.
func requestDirectives(cfg *RequestConfig) ([]string, error) {
	var lines []string

	lines = appendHeaderOps(lines, cfg.SetHeaders, cfg.DelHeaders)

	for _, kv := range cfg.JSONSet {
		lines = append(lines, "json_set "+quote(kv.Name)+" "+kv.Value.Format()+";")
	}
	for _, path := range cfg.JSONDel {
		lines = append(lines, "json_del "+quote(path)+";")
	}
	for _, rename := range cfg.JSONRename {
		lines = append(lines, "json_rename "+quote(rename.From)+" "+quote(rename.To)+";")
	}

	return appendRaw(lines, cfg.Extra)
}
