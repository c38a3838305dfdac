package app

import (
	"github.com/specialistvlad/adventgrid/internal/registry"
	"github.com/specialistvlad/adventgrid/modules/day01"
	"github.com/specialistvlad/adventgrid/modules/day02"
	"github.com/specialistvlad/adventgrid/modules/day03"
	"github.com/specialistvlad/adventgrid/modules/day04"
	"github.com/specialistvlad/adventgrid/modules/day05"
	"github.com/specialistvlad/adventgrid/modules/day06"
	"github.com/specialistvlad/adventgrid/modules/day07"
	"github.com/specialistvlad/adventgrid/modules/day08"
	"github.com/specialistvlad/adventgrid/modules/day09"
	"github.com/specialistvlad/adventgrid/modules/day10"
	"github.com/specialistvlad/adventgrid/modules/day11"
	"github.com/specialistvlad/adventgrid/modules/day12"
	"github.com/specialistvlad/adventgrid/modules/day13"
	"github.com/specialistvlad/adventgrid/modules/day14"
	"github.com/specialistvlad/adventgrid/modules/day15"
	"github.com/specialistvlad/adventgrid/modules/day16"
	"github.com/specialistvlad/adventgrid/modules/day17"
	"github.com/specialistvlad/adventgrid/modules/day18"
	"github.com/specialistvlad/adventgrid/modules/day19"
	"github.com/specialistvlad/adventgrid/modules/day20"
	"github.com/specialistvlad/adventgrid/modules/day21"
	"github.com/specialistvlad/adventgrid/modules/day22"
	"github.com/specialistvlad/adventgrid/modules/day23"
	"github.com/specialistvlad/adventgrid/modules/day24"
	"github.com/specialistvlad/adventgrid/modules/day25"
)

// coreModules is the definitive list of all day modules that are compiled
// into the binary.
var coreModules = []registry.Module{
	&day01.Module{}, &day02.Module{}, &day03.Module{}, &day04.Module{}, &day05.Module{},
	&day06.Module{}, &day07.Module{}, &day08.Module{}, &day09.Module{}, &day10.Module{},
	&day11.Module{}, &day12.Module{}, &day13.Module{}, &day14.Module{}, &day15.Module{},
	&day16.Module{}, &day17.Module{}, &day18.Module{}, &day19.Module{}, &day20.Module{},
	&day21.Module{}, &day22.Module{}, &day23.Module{}, &day24.Module{}, &day25.Module{},
}
