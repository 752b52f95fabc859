package commands

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/theory-cloud/idtheory"
)

const (
	formHex    = "hex"
	formUUID   = "uuid"
	formString = "string"
	formInt    = "int"
	formBigInt = "bigint"
	formBase64 = "base64"
)

var allForms = []string{formHex, formUUID, formString, formInt, formBigInt, formBase64}

func parseForms(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return allForms, nil
	}
	var out []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if !isForm(f) {
			return nil, fmt.Errorf("unknown form %q (want one of %s)", f, strings.Join(allForms, ", "))
		}
		out = append(out, f)
	}
	return out, nil
}

func isForm(f string) bool {
	for _, known := range allForms {
		if f == known {
			return true
		}
	}
	return false
}

// decode reads value in the given form into a new Identifier derived from base.
func decode(base idtheory.Identifier, form, value string) (idtheory.Identifier, error) {
	switch form {
	case formHex:
		return base.FromHex(strings.TrimPrefix(strings.ToLower(value), "0x"))
	case formUUID:
		return base.FromUUID(value)
	case formString:
		return base.FromString(value)
	case formInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return base, fmt.Errorf("parse int %q: %w", value, err)
		}
		return base.FromInt(n)
	case formBigInt:
		n, ok := new(big.Int).SetString(value, 0)
		if !ok {
			return base, fmt.Errorf("parse bigint %q: %w", value, idtheory.ErrMalformedInput)
		}
		return base.FromBigInt(n)
	case formBase64:
		b, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return base, fmt.Errorf("parse base64 %q: %w", value, err)
		}
		return base.FromBuffer(b), nil
	default:
		return base, fmt.Errorf("unknown form %q", form)
	}
}

// encode renders id in the given form. An int that does not fit renders as
// "overflow" rather than failing the whole command.
func encode(id idtheory.Identifier, form string) (string, error) {
	switch form {
	case formHex:
		return id.ToHex(), nil
	case formUUID:
		return id.ToUUID(), nil
	case formString:
		return id.ToString()
	case formInt:
		n, err := id.ToInt()
		if errors.Is(err, idtheory.ErrOverflow) {
			return "overflow", nil
		}
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case formBigInt:
		return id.ToBigInt().String(), nil
	case formBase64:
		return base64.StdEncoding.EncodeToString(id.ToBuffer()), nil
	default:
		return "", fmt.Errorf("unknown form %q", form)
	}
}

// render prints a single form bare and several forms as "form: value" lines.
func render(id idtheory.Identifier, forms []string) ([]string, error) {
	lines := make([]string, 0, len(forms))
	for _, f := range forms {
		v, err := encode(id, f)
		if err != nil {
			return nil, err
		}
		if len(forms) == 1 {
			lines = append(lines, v)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f, v))
	}
	return lines, nil
}
