package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title             string             `yaml:"Title"`
	PolynomialOrder   int                `yaml:"PolynomialOrder"`
	NumElements       int                `yaml:"NumElements"`
	DomainLength      float64            `yaml:"DomainLength"`
	Case              string             `yaml:"Case"`
	Quadrature        string             `yaml:"Quadrature"`
	Storage           string             `yaml:"Storage"`
	SamplesPerElement int                `yaml:"SamplesPerElement"`
	BCs               map[string]float64 `yaml:"BCs"` // Key is BC name: NeumannFlux, DirichletValue
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= DomainLength\n", ip.DomainLength)
	fmt.Printf("[%s]\t\t\t= Case\n", ip.Case)
	fmt.Printf("[%s]\t= Quadrature\n", ip.Quadrature)
	fmt.Printf("[%s]\t\t\t= Storage\n", ip.Storage)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Num Elements\n", ip.NumElements)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
