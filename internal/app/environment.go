package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/ppx123-web/wechat-article/internal/domain"
)

func GetEnvAsString(name, fallback string) string {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return fallback
	}

	return s
}

func RequireEnvAsString(name string) (string, error) {
	s := strings.TrimSpace(os.Getenv(name))
	if s == "" {
		return "", &domain.ConfigError{Variable: name, Reason: "environment variable is required"}
	}

	return s, nil
}

func GetEnvAsInt(name string, fallback int) (int, error) {
	s := GetEnvAsString(name, "")
	if s == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &domain.ConfigError{Variable: name, Reason: fmt.Sprintf("unable to parse [%s] as integer", s)}
	}

	return v, nil
}

func GetEnvAsBoolean(name string, fallback bool) (bool, error) {
	s := GetEnvAsString(name, "")
	switch strings.ToLower(s) {
	case "":
		return fallback, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &domain.ConfigError{
			Variable: name,
			Reason:   fmt.Sprintf("unable to parse [%s] as boolean ('true'/'false')", s),
		}
	}
}

func GetEnvAsStrings(name string) []string {
	s := GetEnvAsString(name, "")
	if s == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func GetEnvAsLocation(name string) (*time.Location, error) {
	s := GetEnvAsString(name, "")
	if s == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, &domain.ConfigError{Variable: name, Reason: fmt.Sprintf("unknown time zone [%s]", s)}
	}

	return loc, nil
}
