package htmlnode

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// TestToHTML - Serialization of leaves and parents
// ---------------------------------------------------------------------------

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    *Node
		want    string
		wantErr error
	}{
		{
			name: "raw text leaf is not escaped",
			node: Text("a < b & c"),
			want: "a < b & c",
		},
		{
			name: "tagged leaf",
			node: Leaf("b", "bold"),
			want: "<b>bold</b>",
		},
		{
			name: "leaf with empty value",
			node: Leaf("span", ""),
			want: "<span></span>",
		},
		{
			name: "attributes in order",
			node: Leaf("a", "click", Attribute{"href", "https://x.io"}, Attribute{"target", "_blank"}),
			want: `<a href="https://x.io" target="_blank">click</a>`,
		},
		{
			name: "attribute values are not escaped",
			node: Leaf("img", "", Attribute{"src", `a"b`}),
			want: `<img src="a"b"></img>`,
		},
		{
			name: "parent with empty children",
			node: Parent("div"),
			want: "<div></div>",
		},
		{
			name: "nested parents",
			node: Parent("div", Parent("p", Text("x "), Leaf("i", "y")), Parent("ul", Parent("li", Text("z")))),
			want: "<div><p>x <i>y</i></p><ul><li>z</li></ul></div>",
		},
		{
			name: "parent attributes are ignored",
			node: &Node{Kind: KindParent, Tag: "p", Children: []*Node{}, Attrs: []Attribute{{"class", "x"}}},
			want: "<p></p>",
		},
		{
			name:    "leaf without value",
			node:    &Node{Kind: KindLeaf, Tag: "b"},
			wantErr: ErrMissingValue,
		},
		{
			name:    "untagged leaf without value",
			node:    &Node{Kind: KindLeaf},
			wantErr: ErrMissingValue,
		},
		{
			name:    "parent without tag",
			node:    &Node{Kind: KindParent, Children: []*Node{}},
			wantErr: ErrMissingTag,
		},
		{
			name:    "parent without children",
			node:    &Node{Kind: KindParent, Tag: "div"},
			wantErr: ErrMissingChildren,
		},
		{
			name:    "error in nested child propagates",
			node:    Parent("div", Parent("p", &Node{Kind: KindLeaf, Tag: "i"})),
			wantErr: ErrMissingValue,
		},
		{
			name:    "zero kind",
			node:    &Node{Tag: "p", Value: strPtr("x")},
			wantErr: ErrInvalidNode,
		},
		{
			name:    "nil child",
			node:    Parent("div", nil),
			wantErr: ErrInvalidNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.node.ToHTML()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToHTML() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilNodeToHTML(t *testing.T) {
	t.Parallel()

	var n *Node
	if _, err := n.ToHTML(); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("nil.ToHTML() error = %v, want %v", err, ErrInvalidNode)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Leaf/parent payload invariant
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    *Node
		wantErr bool
	}{
		{"text leaf", Text("x"), false},
		{"parent tree", Parent("div", Parent("p", Text("x"))), false},
		{"leaf with children", &Node{Kind: KindLeaf, Value: strPtr("x"), Children: []*Node{}}, true},
		{"parent with value", &Node{Kind: KindParent, Tag: "p", Value: strPtr("x"), Children: []*Node{}}, true},
		{"invalid descendant", Parent("div", &Node{Kind: KindLeaf, Children: []*Node{}}), true},
		{"unknown kind", &Node{}, true},
		{"parent without tag is left to ToHTML", Parent("", Text("x")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.node.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidNode) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidNode)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	if p := Parent("ul"); p.Children == nil || !p.IsParent() {
		t.Errorf("Parent() = %+v, want parent with non-nil children", p)
	}
	if l := Leaf("b", "x"); !l.IsLeaf() || l.Value == nil || *l.Value != "x" {
		t.Errorf("Leaf() = %+v, want leaf with value x", l)
	}

	attrs := []Attribute{{"href", "/a"}}
	l := Leaf("a", "x", attrs...)
	attrs[0].Value = "/changed"
	if l.Attrs[0].Value != "/a" {
		t.Errorf("Leaf() shares attrs slice with caller")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindLeaf, "leaf"},
		{KindParent, "parent"},
		{KindInvalid, "invalid"},
		{Kind(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestAttrsHTML(t *testing.T) {
	t.Parallel()

	got := AttrsHTML([]Attribute{{"src", "u"}, {"alt", "a"}})
	if want := ` src="u" alt="a"`; got != want {
		t.Errorf("AttrsHTML() = %q, want %q", got, want)
	}
	if got := AttrsHTML(nil); got != "" {
		t.Errorf("AttrsHTML(nil) = %q, want empty", got)
	}
}
