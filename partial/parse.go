package partial

import "fmt"

// Parse reads the canonical surface syntax Render produces — literals,
// 'ε', '∅', '□', concatenation by juxtaposition, '(a|b)' union, 'a*' star,
// and 'a?' optional — back into a *Node. Re-rendering the parsed tree
// reproduces most strings Render emits; the flattened "(e|f)*" form that
// Render gives Star(Concat(e*, f*)) reads back as a Star over a Union and
// re-renders as "((e|f))*". It is used to accept a caller- or
// CLI-supplied seed expression without requiring Go call sites to build
// the tree by hand.
func Parse(s string) (*Node, error) {
	p := &parser{src: []rune(s)}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("partial: parse: unexpected trailing input at offset %d in %q", p.pos, s)
	}
	return n, nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseUnion() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || c != '|' {
			return left, nil
		}
		p.pos++
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = Union(left, right)
	}
}

func (p *parser) parseConcat() (*Node, error) {
	var result *Node
	for {
		c, ok := p.peek()
		if !ok || c == '|' || c == ')' {
			break
		}
		factor, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = factor
		} else {
			result = Concat(result, factor)
		}
	}
	if result == nil {
		return EmptyString(), nil
	}
	return result, nil
}

func (p *parser) parseFactor() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok {
			return atom, nil
		}
		switch c {
		case '*':
			p.pos++
			atom = Star(atom)
		case '?':
			p.pos++
			atom = Optional(atom)
		default:
			return atom, nil
		}
	}
}

func (p *parser) parseAtom() (*Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("partial: parse: unexpected end of input")
	}
	switch c {
	case '(':
		p.pos++
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		close, ok := p.peek()
		if !ok || close != ')' {
			return nil, fmt.Errorf("partial: parse: missing closing ')' at offset %d", p.pos)
		}
		p.pos++
		return inner, nil
	case 'ε':
		p.pos++
		return EmptyString(), nil
	case '∅':
		p.pos++
		return EmptyLanguage(), nil
	case '□':
		p.pos++
		return Hole(), nil
	default:
		p.pos++
		return Literal(c), nil
	}
}
