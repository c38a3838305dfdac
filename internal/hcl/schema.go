package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a manifest file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// puzzleBlock is the HCL form of a puzzle:
//
//	puzzle "trebuchet" {
//	  day    = 1
//	  parts  = [1, 2]
//	  input  = "inputs/day01.txt"
//	  expect = { part1 = 142, part2 = "281" }
//	}
type puzzleBlock struct {
	Name   string         `hcl:"name,label"`
	Day    int            `hcl:"day"`
	Parts  []int          `hcl:"parts,optional"`
	Input  string         `hcl:"input,optional"`
	Inline string         `hcl:"inline,optional"`
	Expect hcl.Expression `hcl:"expect,optional"`
}
