package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
)

// Parameters obtained from the YAML input file
type InputParametersCavity struct {
	Title          string  `yaml:"Title"`
	Nx             int     `yaml:"Nx"` // Pressure cells along x
	Ny             int     `yaml:"Ny"` // Pressure cells along y
	Length         float64 `yaml:"Length"`
	Height         float64 `yaml:"Height"`
	Rho            float64 `yaml:"Rho"`
	Mi             float64 `yaml:"Mi"`
	Dt             float64 `yaml:"Dt"`
	LidVelocity    float64 `yaml:"LidVelocity"`
	InitType       string  `yaml:"InitType"`
	Seed           int64   `yaml:"Seed"`
	ParallelDegree int     `yaml:"ParallelDegree"`
	Debug          bool    `yaml:"Debug"`
}

func NewInputParametersCavity() (ip *InputParametersCavity) {
	ip = &InputParametersCavity{
		Title:       "Lid Driven Cavity",
		Nx:          10,
		Ny:          10,
		Length:      1.,
		Height:      1.,
		Rho:         1.,
		Mi:          0.01,
		Dt:          0.01,
		LidVelocity: 1.,
		InitType:    "Previous",
	}
	return
}

// Parse overlays the YAML document on the current values
func (ip *InputParametersCavity) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersCavity) NewGraph() (g *StaggeredGrid.Graph, err error) {
	return StaggeredGrid.NewLidDrivenCavity(ip.Nx, ip.Ny, ip.Length, ip.Height,
		ip.Rho, ip.Mi, ip.Dt, ip.LidVelocity)
}

func (ip *InputParametersCavity) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Pressure Cells\n", ip.Nx, ip.Ny)
	fmt.Printf("%8.5f x %8.5f\t= Domain Size\n", ip.Length, ip.Height)
	fmt.Printf("%8.5f\t\t= Rho\n", ip.Rho)
	fmt.Printf("%8.5f\t\t= Mi\n", ip.Mi)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5f\t\t= Lid Velocity\n", ip.LidVelocity)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
