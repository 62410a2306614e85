package config

import "net/url"

const preparedBinaryParam = "disable_prepared_binary_result"

// DatabaseURL is DBURL with disable_prepared_binary_result=yes added when
// DBDisablePreparedBinary is set. Both the bball tool and the migration tool
// connect through it.
func (c Config) DatabaseURL() string {
	return normalizeDBURL(c.DBURL, c.DBDisablePreparedBinary)
}

// normalizeDBURL leaves key=value DSNs and URLs that already choose a value
// untouched.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}
	query := parsed.Query()
	if query.Has(preparedBinaryParam) {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
