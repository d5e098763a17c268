package mxml_marks

import (
	"testing"
)

func TestRuneNode_String(t *testing.T) {
	print(dynamicsTree.String())
}

type RuneWalkTest struct {
	Input    string
	Matched  bool
	Terminal bool
}

var RuneWalkTests = []RuneWalkTest{
	{"p", true, true},
	{"pp", true, true},
	{"sf", true, true},
	{"sff", true, false},
	{"sffz", true, true},
	{"sfz", true, true},
	{"q", false, false},
	{"pq", false, false},
}

func TestRuneNode_Evaluate(t *testing.T) {
	for testIdx := range RuneWalkTests {
		test := RuneWalkTests[testIdx]
		node := dynamicsTree
		matched := true
		terminal := false
		for _, r := range test.Input {
			next, isTerminal := node.evaluate(r)
			if next == nil {
				matched = false
				break
			}
			node = next
			terminal = isTerminal
		}
		if matched != test.Matched {
			t.Error(test.Input + ": wrong match outcome")
		}
		if matched && terminal != test.Terminal {
			t.Error(test.Input + ": wrong terminal outcome")
		}
	}
}

func TestCreateRuneTree(t *testing.T) {
	tree := createRuneTree([]string{"fp", "f", "ff"})
	node, terminal := tree.evaluate('f')
	if node == nil || !terminal {
		t.Fatal("f should be a terminal child of the root")
	}
	if _, terminal = node.evaluate('p'); !terminal {
		t.Error("fp should be terminal")
	}
	if _, terminal = node.evaluate('f'); !terminal {
		t.Error("ff should be terminal")
	}
	if next, _ := node.evaluate('z'); next != nil {
		t.Error("fz should not be in the tree")
	}
}
