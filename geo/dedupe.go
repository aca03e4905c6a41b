package geo

import "github.com/Flokey82/go_gens/utils"

var minMax = utils.MinMax[float64]
