package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Inspect holds configuration for the inspection pipeline.
type Inspect struct {
	// CacheTTLSeconds is how long a parsed bundle document stays cached
	// in service mode. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// TextureRefFields is a comma-separated list of custom material
	// field ids the census counts as texture references.
	TextureRefFields string `mapstructure:"texture_ref_fields" default:""`
}

// TextureRefIDs parses the configured texture reference field list.
func (i Inspect) TextureRefIDs() ([]uint32, error) {
	if strings.TrimSpace(i.TextureRefFields) == "" {
		return nil, nil
	}

	parts := strings.Split(i.TextureRefFields, ",")
	ids := make([]uint32, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid texture reference field %q: %w", part, err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}
