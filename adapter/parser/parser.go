// Package parser contains the default [domain.ValueParser] implementation.
package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vinicius-lino-figueiredo/filedb/adapter/validator"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// Parser implements [domain.ValueParser].
type Parser struct {
	validator domain.NameValidator
}

// NewParser returns a new implementation of [domain.ValueParser].
func NewParser(options ...Option) domain.ValueParser {
	p := Parser{validator: validator.NewValidator()}
	for _, option := range options {
		option(&p)
	}
	return &p
}

// Parse implements [domain.ValueParser].
func (p *Parser) Parse(tag string, text string) (domain.Value, error) {
	kind := domain.ParseKind(tag)
	switch kind {
	case domain.KindInt32:
		i, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, p.parseErr(kind, text, err)
		}
		return domain.Int32(i), nil
	case domain.KindInt64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, p.parseErr(kind, text, err)
		}
		return domain.Int64(i), nil
	case domain.KindDecimal:
		return p.parseDecimal(text)
	case domain.KindBool:
		switch text {
		case "true":
			return domain.Bool(true), nil
		case "false":
			return domain.Bool(false), nil
		}
		return nil, domain.ErrParse{Kind: kind, Input: text}
	case domain.KindText:
		if !utf8.ValidString(text) {
			return nil, domain.ErrParse{Kind: kind, Input: text, Err: domain.ErrInvalidUTF8}
		}
		return domain.Text(text), nil
	default:
		return nil, domain.ErrParse{Kind: domain.KindUnknown, Input: tag}
	}
}

// hexadecimal floats and digit separators are Go syntax, not decimal notation
func (p *Parser) parseDecimal(text string) (domain.Value, error) {
	if strings.ContainsAny(text, "xX_") {
		return nil, domain.ErrParse{Kind: domain.KindDecimal, Input: text}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.parseErr(domain.KindDecimal, text, err)
	}
	return domain.Decimal(f), nil
}

// strips the strconv prefix, which repeats the input
func (p *Parser) parseErr(kind domain.Kind, text string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return domain.ErrParse{Kind: kind, Input: text, Err: err}
}

// ParseFields implements [domain.ValueParser].
func (p *Parser) ParseFields(fields []domain.InputField) (map[string]domain.Value, error) {
	parsed, err := p.ParseQuery(fields)
	if err != nil {
		return nil, err
	}
	data := make(map[string]domain.Value, len(parsed))
	for _, f := range parsed {
		data[f.Name] = f.Value
	}
	return data, nil
}

// ParseQuery implements [domain.ValueParser].
func (p *Parser) ParseQuery(fields []domain.InputField) (domain.Query, error) {
	query := make(domain.Query, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := p.validator.ValidateName(domain.SubjectField, f.Name); err != nil {
			return nil, err
		}
		if _, ok := seen[f.Name]; ok {
			return nil, domain.ErrDuplicateField{Name: f.Name}
		}
		seen[f.Name] = struct{}{}
		v, err := p.Parse(f.Type, f.Value)
		if err != nil {
			return nil, err
		}
		query = append(query, domain.Field{Name: f.Name, Value: v})
	}
	return query, nil
}
