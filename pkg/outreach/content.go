package outreach

import (
	_ "embed"

	"github.com/alamane/outreach/pkg/asyncx"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Content is the static, read-only part of the site.
type Content struct {
	Organization Organization `yaml:"organization"`
	Missions     []Mission    `yaml:"missions"`
	Impact       []Stat       `yaml:"impact"`
	Donation     Donation     `yaml:"donation"`
}

type Organization struct {
	Name      string `yaml:"name"`
	Tagline   string `yaml:"tagline"`
	Summary   string `yaml:"summary"`
	Phone     string `yaml:"phone"`
	Email     string `yaml:"email"`
	Copyright string `yaml:"copyright"`
}

type Mission struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Donation holds the bank transfer details shown next to the donor form.
type Donation struct {
	Title   string      `yaml:"title"`
	Bank    BankDetails `yaml:"bank"`
	Intro   string      `yaml:"intro"`
	Uses    []string    `yaml:"uses"`
	Receipt string      `yaml:"receipt"`
}

type BankDetails struct {
	Beneficiary string `yaml:"beneficiary"`
	IBAN        string `yaml:"iban"`
	BIC         string `yaml:"bic"`
	Name        string `yaml:"name"`
	Address     string `yaml:"address"`
}

// LoadContent parses the embedded content once and returns the shared copy.
var LoadContent = asyncx.Once(func() (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(contentYAML, &c); err != nil {
		return nil, outreachErrors.NewWithCause(ErrContent, err)
	}
	return &c, nil
})
