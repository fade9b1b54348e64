package utils

import (
	"fmt"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate interpreta uma data AAAA-MM-DD. String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	return &date, nil
}

// ParseYear valida um ano de quatro dígitos
func ParseYear(value string) (int, error) {
	year, err := strconv.Atoi(value)
	if err != nil || year < 1000 || year > 9999 {
		return 0, fmt.Errorf("ano inválido: %q", value)
	}
	return year, nil
}

// ParseMonth valida um mês entre 1 e 12
func ParseMonth(value string) (int, error) {
	month, err := strconv.Atoi(value)
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("mês inválido: %q", value)
	}
	return month, nil
}
