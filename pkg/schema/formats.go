package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// knownFormats is the set of format names a schema may use in strict mode.
// The engine implements most of them; the rest are registered by extraFormats.
var knownFormats = map[string]bool{
	"date": true, "time": true, "date-time": true, "iso-time": true, "iso-date-time": true,
	"duration": true, "uri": true, "uri-reference": true, "uri-template": true, "url": true,
	"email": true, "hostname": true, "ipv4": true, "ipv6": true, "regex": true, "uuid": true,
	"json-pointer": true, "json-pointer-uri-fragment": true, "relative-json-pointer": true,
	"byte": true, "int32": true, "int64": true, "float": true, "double": true,
	"password": true, "binary": true,
}

// extraFormats are the known formats the engine does not ship.
var extraFormats = []*jsonschema.Format{
	{Name: "iso-time", Validate: stringFormat(validateISOTime)},
	{Name: "iso-date-time", Validate: stringFormat(validateISODateTime)},
	{Name: "url", Validate: stringFormat(validateURL)},
	{Name: "json-pointer-uri-fragment", Validate: stringFormat(matches(jsonPointerFragmentRE))},
	{Name: "byte", Validate: stringFormat(matches(base64RE))},
	{Name: "int32", Validate: numberFormat(integerIn(math.MinInt32, math.MaxInt32))},
	{Name: "int64", Validate: numberFormat(integerIn(math.Inf(-1), math.Inf(1)))},
	{Name: "float", Validate: numberFormat(func(float64) error { return nil })},
	{Name: "double", Validate: numberFormat(func(float64) error { return nil })},
	{Name: "password", Validate: func(any) error { return nil }},
	{Name: "binary", Validate: func(any) error { return nil }},
}

var (
	isoTimeRE             = regexp.MustCompile(`(?i)^(\d\d):(\d\d):(\d\d)(?:\.\d+)?(?:z|[+-]\d\d(?::?\d\d)?)?$`)
	jsonPointerFragmentRE = regexp.MustCompile(`(?i)^#(?:/(?:[a-z0-9_\-.!$&'()*+,;:=@]|%[0-9a-f]{2}|~0|~1)*)*$`)
	base64RE              = regexp.MustCompile(`(?i)^(?:[a-z0-9+/]{4})*(?:[a-z0-9+/]{2}==|[a-z0-9+/]{3}=)?$`)
)

// stringFormat applies fn to strings only; other types pass.
func stringFormat(fn func(string) error) func(any) error {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		return fn(s)
	}
}

// numberFormat applies fn to numbers only; other types pass.
func numberFormat(fn func(float64) error) func(any) error {
	return func(v any) error {
		var f float64
		switch n := v.(type) {
		case json.Number:
			parsed, err := strconv.ParseFloat(string(n), 64)
			if err != nil {
				return err
			}
			f = parsed
		case float64:
			f = n
		case int:
			f = float64(n)
		default:
			return nil
		}
		return fn(f)
	}
}

func matches(re *regexp.Regexp) func(string) error {
	return func(s string) error {
		if !re.MatchString(s) {
			return errors.New("does not match format")
		}
		return nil
	}
}

func integerIn(lo, hi float64) func(float64) error {
	return func(f float64) error {
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return errors.New("not an integer")
		}
		if f < lo || f > hi {
			return fmt.Errorf("out of range [%v, %v]", lo, hi)
		}
		return nil
	}
}

// validateISOTime accepts a time of day with an optional zone.
func validateISOTime(s string) error {
	m := isoTimeRE.FindStringSubmatch(s)
	if m == nil {
		return errors.New("not a valid time")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	// 60 allows a leap second.
	if hour > 23 || minute > 59 || second > 60 {
		return errors.New("time out of range")
	}
	return nil
}

// validateISODateTime accepts a date and an iso-time separated by 'T' or a space.
func validateISODateTime(s string) error {
	i := strings.IndexAny(s, "tT ")
	if i < 0 {
		return errors.New("missing date/time separator")
	}
	if _, err := time.Parse("2006-01-02", s[:i]); err != nil {
		return errors.New("not a valid date")
	}
	return validateISOTime(s[i+1:])
}

// validateURL accepts absolute http, https and ftp URLs with a host.
func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
	default:
		return errors.New("scheme must be http, https or ftp")
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
