package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/tfimesh/geometry3D"
)

// Parameters obtained from the YAML mesh job file
type InputParameters3D struct {
	Title          string      `yaml:"Title"`
	GeometryFile   string      `yaml:"GeometryFile"` // Boundary curve file, replaces Corners
	NumXiPoints    int         `yaml:"NumXiPoints"`
	NumEtaPoints   int         `yaml:"NumEtaPoints"`
	NumZetaPoints  int         `yaml:"NumZetaPoints"`
	Corners        [][]float64 `yaml:"Corners"` // 8 corners for a block, 4 for a quad face
	OutputFile     string      `yaml:"OutputFile"`
	Format         string      `yaml:"Format"`
	ParallelDegree int         `yaml:"ParallelDegree"`
}

func (ip *InputParameters3D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// CornerPoints converts Corners into exactly num points
func (ip *InputParameters3D) CornerPoints(num int) (pts []geometry3D.Vector, err error) {
	if len(ip.Corners) != num {
		err = fmt.Errorf("need %d corners, have %d", num, len(ip.Corners))
		return
	}
	pts = make([]geometry3D.Vector, num)
	for n, c := range ip.Corners {
		if len(c) != 3 {
			return nil, fmt.Errorf("corner %d has %d coordinates, need x, y, z", n, len(c))
		}
		pts[n] = geometry3D.NewVector(c[0], c[1], c[2])
	}
	return
}

func (ip *InputParameters3D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if len(ip.GeometryFile) != 0 {
		fmt.Printf("[%s]\t= Geometry File\n", ip.GeometryFile)
	}
	fmt.Printf("[%d, %d, %d]\t\t= Number of Points (xi, eta, zeta)\n",
		ip.NumXiPoints, ip.NumEtaPoints, ip.NumZetaPoints)
	for n, c := range ip.Corners {
		fmt.Printf("Corners[%d] = %v\n", n, c)
	}
	fmt.Printf("[%s]\t\t= Output File\n", ip.OutputFile)
	fmt.Printf("[%s]\t\t\t= Format\n", ip.Format)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
