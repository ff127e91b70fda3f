package scene

import "strconv"

// Kind identifies the role of an entity in the scene. Registry iteration,
// and therefore update and draw order, follows Kind order.
type Kind int

const (
	KindCamera Kind = iota
	KindLight
	KindSkybox
	KindIsland
	KindWaves
	KindBoats
	KindAxes
	KindStats
)

var kindNames = map[Kind]string{
	KindCamera: "camera",
	KindLight:  "light",
	KindSkybox: "skybox",
	KindIsland: "island",
	KindWaves:  "waves",
	KindBoats:  "boats",
	KindAxes:   "axes",
	KindStats:  "stats",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}
