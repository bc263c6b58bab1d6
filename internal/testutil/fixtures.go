// Package testutil holds fixtures and helpers shared by the package tests.
package testutil

// ThreeNodeJSON is the smallest branching tree: a root with two leaves.
const ThreeNodeJSON = `{
  "node_id": "R", "year": 0, "probability": 1.0, "state": {},
  "children": [
    {"node_id": "A", "year": 1, "probability": 0.5, "state": {}, "children": []},
    {"node_id": "B", "year": 1, "probability": 0.5, "state": {}, "children": []}
  ]
}`

// ThreeNodeYAML is ThreeNodeJSON written in YAML.
const ThreeNodeYAML = `
node_id: R
year: 0
probability: 1.0
state: {}
children:
  - {node_id: A, year: 1, probability: 0.5, state: {}, children: []}
  - {node_id: B, year: 1, probability: 0.5, state: {}, children: []}
`

// ThreeNodeHCL is ThreeNodeJSON written in HCL.
const ThreeNodeHCL = `
node "R" {
  year        = 0
  probability = 1.0
  state       = {}

  node "A" {
    year        = 1
    probability = 0.5
    state       = {}
  }

  node "B" {
    year        = 1
    probability = 0.5
    state       = {}
  }
}
`

// EnergyTreeJSON is a three-period tree with integer identifiers, mixed
// state payloads and leaves at different depths:
//
//	0 (2020)
//	├── 1 (2030, high)
//	│   ├── 3 (2040, high)
//	│   └── 4 (2040, low)
//	└── 2 (2030, low)
const EnergyTreeJSON = `{
  "node_id": 0, "year": 2020, "probability": 1,
  "state": {"demand": "base", "prices": [40, 55.5]},
  "children": [
    {
      "node_id": 1, "year": 2030, "probability": 0.6,
      "state": {"demand": "high", "prices": [60, 70]},
      "children": [
        {"node_id": 3, "year": 2040, "probability": 0.3, "state": {"demand": "high"}},
        {"node_id": 4, "year": 2040, "probability": 0.7, "state": {"demand": "low"}}
      ]
    },
    {"node_id": 2, "year": 2030, "probability": 0.4, "state": {"demand": "low", "prices": null}}
  ]
}`
