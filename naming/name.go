// Package naming defines the hierarchical naming convention that every
// container in this module follows.
package naming

import (
	"strconv"
	"strings"
)

// Named is an object that carries a hierarchical name.
type Named interface {
	Name() string
}

// A Name is a hierarchical name that includes a series of tokens separated
// by dots.
type Name struct {
	Tokens []Token
}

// Token is one element of a hierarchical name.
type Token struct {
	ElemName string
	Index    []int
}

// ParseName parses a name string and returns a Name object.
func ParseName(s string) Name {
	parts := strings.Split(s, ".")
	name := Name{Tokens: make([]Token, len(parts))}

	for i, part := range parts {
		name.Tokens[i] = parseToken(part)
	}

	return name
}

func parseToken(s string) Token {
	bracketMustMatch(s)

	segments := strings.Split(s, "[")
	indices := make([]int, len(segments)-1)

	for i := 1; i < len(segments); i++ {
		index, err := strconv.Atoi(segments[i][:len(segments[i])-1])
		if err != nil {
			panic("name index must be integer")
		}

		indices[i-1] = index
	}

	return Token{ElemName: segments[0], Index: indices}
}

func bracketMustMatch(s string) {
	open := 0
	for _, c := range s {
		if c == '[' {
			open++
		} else if c == ']' {
			open--
			if open < 0 {
				panic("name bracket must match")
			}
		}
	}

	if open != 0 {
		panic("name bracket must match")
	}
}

// MustBeValid panics if the name does not follow the naming convention.
// A valid name is organized hierarchically (e.g., "Desk.Waitlist"), each
// element is non-empty, starts with a capital letter, and elements in a
// series use square-bracket notation (e.g., "Queue.Bucket[2]").
func MustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic("name " + name + " is not valid: " + r.(string))
		}
	}()

	n := ParseName(name)
	for _, token := range n.Tokens {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token Token) {
	if token.ElemName == "" {
		panic("name element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(token.ElemName, c) {
			panic("name element must not contain " + c)
		}
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		panic("name element must start with a capital letter")
	}
}

// Build builds a name from a parent name and an element name.
func Build(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildWithIndex builds a name from a parent name, an element name, and an
// index within a series.
func BuildWithIndex(parentName, elementName string, index int) string {
	return Build(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
