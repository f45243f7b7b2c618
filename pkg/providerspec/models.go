package providerspec

import "strings"

// modelsDirectives builds the statements of a models block. mode is
// mandatory; the rest follows the fixed directive order of the DSL.
func modelsDirectives(cfg *ModelsConfig) ([]string, error) {
	mode := strings.TrimSpace(cfg.Mode)
	if mode == "" {
		return nil, schemaErrorf("models.mode is required")
	}
	lines := []string{"models_mode " + mode + ";"}

	if cfg.Path != nil {
		lines = append(lines, "path "+quote(*cfg.Path)+";")
	}
	if cfg.Method != "" {
		lines = append(lines, "method "+cfg.Method+";")
	}

	for _, idPath := range cfg.IDPath {
		if strings.TrimSpace(idPath) == "" {
			return nil, schemaErrorf("models.id_path must contain non-empty strings")
		}
		lines = append(lines, "id_path "+quote(idPath)+";")
	}

	if cfg.IDRegex != nil {
		lines = append(lines, "id_regex "+quote(*cfg.IDRegex)+";")
	}
	if cfg.IDAllowRegex != nil {
		lines = append(lines, "id_allow_regex "+quote(*cfg.IDAllowRegex)+";")
	}

	lines = appendHeaderOps(lines, cfg.SetHeaders, cfg.DelHeaders)
	return appendRaw(lines, cfg.Extra)
}

// appendHeaderOps emits set_header/del_header statements in declaration
// order; shared by the models, balance and request builders.
func appendHeaderOps(lines []string, set []KV, del []string) []string {
	for _, kv := range set {
		lines = append(lines, "set_header "+quote(kv.Name)+" "+kv.Value.Format()+";")
	}
	for _, name := range del {
		lines = append(lines, "del_header "+quote(name)+";")
	}
	return lines
}
