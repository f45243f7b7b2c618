package providerspec

// upstreamDirectives builds the statements of a route's upstream block. The
// path statement is mandatory: a raw expression when path_expr is set,
// otherwise the quoted literal path.
func upstreamDirectives(route *Route) ([]string, error) {
	var lines []string

	switch {
	case route.PathExpr != "":
		lines = append(lines, "set_path "+route.PathExpr+";")
	case route.Path != nil:
		lines = append(lines, "set_path "+quote(*route.Path)+";")
	default:
		return nil, schemaErrorf("route requires path or path_expr")
	}

	for _, kv := range route.SetQuery {
		lines = append(lines, "set_query "+quote(kv.Name)+" "+kv.Value.Format()+";")
	}
	for _, name := range route.DelQuery {
		lines = append(lines, "del_query "+quote(name)+";")
	}

	return appendRaw(lines, route.UpstreamExtra)
}

// compileRoute produces the full match block for one route, starting with
// the match header line and ending with its closing brace. Override blocks
// for request/response/metrics are only emitted when they carry statements;
// the upstream block is always present.
func compileRoute(route *Route) ([]string, error) {
	if !validAPIs[route.API] {
		return nil, schemaErrorf("route.api must be one of supported api names, got: %q", route.API)
	}

	header := "  match api = " + quote(route.API)
	if route.Stream != nil {
		if *route.Stream {
			header += " stream = true"
		} else {
			header += " stream = false"
		}
	}
	lines := []string{header + " {"}

	if route.Auth != nil {
		authLines, err := authDirectives(route.Auth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, renderBlock("auth", authLines, 4)...)
	}

	if route.Request != nil {
		reqLines, err := requestDirectives(route.Request)
		if err != nil {
			return nil, err
		}
		if len(reqLines) > 0 {
			lines = append(lines, renderBlock("request", reqLines, 4)...)
		}
	}

	upstreamLines, err := upstreamDirectives(route)
	if err != nil {
		return nil, err
	}
	lines = append(lines, renderBlock("upstream", upstreamLines, 4)...)

	if route.Response != nil {
		respLines, err := responseDirectives(route.Response)
		if err != nil {
			return nil, err
		}
		if len(respLines) > 0 {
			lines = append(lines, renderBlock("response", respLines, 4)...)
		}
	}

	if route.Metrics != nil {
		metricLines, err := metricsDirectives(route.Metrics)
		if err != nil {
			return nil, err
		}
		if len(metricLines) > 0 {
			lines = append(lines, renderBlock("metrics", metricLines, 4)...)
		}
	}

	if route.ErrorMap != "" {
		lines = append(lines, renderBlock("error", []string{"error_map " + route.ErrorMap + ";"}, 4)...)
	}

	extra, err := appendRaw(nil, route.Extra)
	if err != nil {
		return nil, err
	}
	for _, stmt := range extra {
		lines = append(lines, "    "+stmt)
	}

	return append(lines, "  }"), nil
}
