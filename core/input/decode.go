package input

import (
	"bytes"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v2"

	"saas-economics/internal/errors"
)

// Format is an input document format
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the document format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.NotSupported("input file extension " + filepath.Ext(path)).WithContext("path", path)
}

// Decode reads an input document from disk
func Decode(path string) (RawInputs, error) {
	format, err := FormatFor(path)
	if err != nil {
		return RawInputs{}, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return RawInputs{}, errors.NotFound("input file", path)
		}
		return RawInputs{}, errors.Wrap(errors.TypeInput, "read input file", err).WithContext("path", path)
	}

	return DecodeBytes(src, path, format)
}

// DecodeBytes decodes an in-memory document. filename is used only in
// diagnostics.
func DecodeBytes(src []byte, filename string, format Format) (RawInputs, error) {
	var raw RawInputs

	switch format {
	case FormatHCL:
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(src, filename)
		if diags.HasErrors() {
			return RawInputs{}, errors.Wrapf(errors.TypeParsing, diags, "parse %s", filename)
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
			return RawInputs{}, errors.Wrapf(errors.TypeParsing, diags, "decode %s input %s", format, filename)
		}

	case FormatYAML:
		if err := yaml.UnmarshalStrict(src, &raw); err != nil {
			return RawInputs{}, errors.Wrapf(errors.TypeParsing, err, "decode %s input %s", format, filename)
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return RawInputs{}, errors.Wrapf(errors.TypeParsing, err, "decode %s input %s", format, filename)
		}

	default:
		return RawInputs{}, errors.NotSupported("input format " + string(format))
	}

	return raw, nil
}

// FromValues reads inputs from query or form values keyed by the
// snake_case field names. Unparseable values count as missing.
func FromValues(values url.Values) RawInputs {
	num := func(key string) *float64 {
		s := strings.TrimSpace(values.Get(key))
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	raw := RawInputs{
		Customers:                  num("customers"),
		LocationsPerCustomer:       num("locations_per_customer"),
		ImagesPerLocation:          num("images_per_location"),
		AvgImageSizeMB:             num("avg_image_size_mb"),
		MonthlyViewsPerImage:       num("monthly_views_per_image"),
		PricePerCustomer:           num("price_per_customer"),
		SetupFee:                   num("setup_fee"),
		MonthlyChurnPercent:        num("monthly_churn_percent"),
		MonthlyGrowthPercent:       num("monthly_growth_percent"),
		HostingSeats:               num("hosting_seats"),
		HostingBandwidthMultiplier: num("hosting_bandwidth_multiplier"),
		EmployeeSalaries:           num("employee_salaries"),
		MarketingSpend:             num("marketing_spend"),
		OtherMonthlyCosts:          num("other_monthly_costs"),
	}

	if s := strings.TrimSpace(values.Get("use_secondary_hosting")); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			raw.UseSecondaryHosting = &b
		}
	}

	return raw
}
