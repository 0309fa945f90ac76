package rope

import (
	"strings"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/dshills/unitext/text"
	"github.com/dshills/unitext/utf"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("New rope should be empty")
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"multiple newlines", "a\nb\nc\nd"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 100)},
		{"very long string", strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromString(tt.input)
			if err != nil {
				t.Fatalf("FromString(%q) error: %v", tt.name, err)
			}
			if got := r.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
			if got := r.Len(); got != len(tt.input) {
				t.Errorf("Len() = %d, want %d", got, len(tt.input))
			}
		})
	}
}

func TestFromStringStrictModeRejectsInvalidUTF8(t *testing.T) {
	_, err := FromString("ab\xffcd", WithMode(utf.ModeStrict))
	if err != InvalidEncoding {
		t.Errorf("expected InvalidEncoding, got %v", err)
	}
}

func TestFromStringReplacementModeIsDefault(t *testing.T) {
	r, err := FromString("ab\xffcd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(r.String(), "�") {
		t.Errorf("expected replacement character in %q", r.String())
	}
}

func TestFromView(t *testing.T) {
	r := FromView("hello world")
	if r.String() != "hello world" {
		t.Errorf("String() = %q", r.String())
	}
	if r.root.n.leaf.kind != leafView {
		t.Error("expected a View leaf")
	}
}

func TestFromRepeated(t *testing.T) {
	r := FromRepeated("ab", 5)
	if got, want := r.String(), "ababababab"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.root.n.leaf.kind != leafRepeated {
		t.Error("expected a RepeatedView leaf")
	}
}

func TestFromRepeatedEmptyInputs(t *testing.T) {
	if !FromRepeated("", 5).IsEmpty() {
		t.Error("expected empty rope for empty unit")
	}
	if !FromRepeated("x", 0).IsEmpty() {
		t.Error("expected empty rope for count 0")
	}
}

func TestByteAt(t *testing.T) {
	r, _ := FromString("hello world")
	for i := 0; i < r.Len(); i++ {
		if got, want := r.ByteAt(i), byte("hello world"[i]); got != want {
			t.Errorf("ByteAt(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestSlice(t *testing.T) {
	r, _ := FromString("hello world")
	tests := []struct {
		lo, hi int
		want   string
	}{
		{0, 5, "hello"},
		{6, 11, "world"},
		{0, 11, "hello world"},
		{0, 0, ""},
		{11, 11, ""},
	}
	for _, tt := range tests {
		if got := r.Slice(tt.lo, tt.hi).String(); got != tt.want {
			t.Errorf("Slice(%d,%d) = %q, want %q", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSliceSharesStorage(t *testing.T) {
	long := strings.Repeat("abcdefghij", 1000)
	r, _ := FromString(long)
	sub := r.Slice(100, 200)
	if sub.String() != long[100:200] {
		t.Errorf("sliced content mismatch")
	}
	// r must remain unchanged by taking a slice of it.
	if r.String() != long {
		t.Error("Slice mutated its receiver")
	}
	// [100,200) starts inside r's first leaf, so sub's first leaf must point
	// into that leaf's bytes rather than at a copy of them.
	rLeaf, subLeaf := r.root, sub.root
	for !rLeaf.n.isLeaf {
		rLeaf = rLeaf.n.children[0]
	}
	for !subLeaf.n.isLeaf {
		subLeaf = subLeaf.n.children[0]
	}
	want := unsafe.Add(unsafe.Pointer(unsafe.StringData(rLeaf.n.leaf.owned.String())), 100)
	if unsafe.Pointer(unsafe.StringData(subLeaf.n.leaf.owned.String())) != want {
		t.Error("Slice copied bytes instead of sharing the receiver's leaf storage")
	}
}

func TestConcat(t *testing.T) {
	a, _ := FromString("hello ")
	b, _ := FromString("world")
	c := a.Concat(b)
	if got, want := c.String(), "hello world"; got != want {
		t.Errorf("Concat() = %q, want %q", got, want)
	}
	// Operands are untouched.
	if a.String() != "hello " || b.String() != "world" {
		t.Error("Concat mutated an operand")
	}
}

func TestConcatEmptyOperands(t *testing.T) {
	a, _ := FromString("hello")
	if got := a.Concat(New()).String(); got != "hello" {
		t.Errorf("Concat with empty right = %q", got)
	}
	if got := New().Concat(a).String(); got != "hello" {
		t.Errorf("Concat with empty left = %q", got)
	}
}

func TestConcatManyPiecesBuildsBalancedTree(t *testing.T) {
	r := New()
	var want strings.Builder
	for i := 0; i < 500; i++ {
		piece, _ := FromString(strings.Repeat("x", 50))
		r = r.Concat(piece)
		want.WriteString(strings.Repeat("x", 50))
	}
	if r.String() != want.String() {
		t.Error("concatenation of many pieces lost content")
	}
	// 500 one-leaf pieces rebuild into 32 interior nodes, then 2, then the
	// root: height 4 counting the leaf level.
	if height := treeHeight(r.root); height > 4 {
		t.Errorf("tree height %d too large for 500 leaves with MaxChildren=%d", height, MaxChildren)
	}
}

func TestInsert(t *testing.T) {
	r, _ := FromString("hello world")
	r2, err := r.Insert(5, ",")
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got, want := r2.String(), "hello, world"; got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
	// Original is untouched.
	if r.String() != "hello world" {
		t.Error("Insert mutated its receiver")
	}
}

func TestInsertAtBoundaries(t *testing.T) {
	r, _ := FromString("world")
	r2, err := r.Insert(0, "hello ")
	if err != nil || r2.String() != "hello world" {
		t.Errorf("Insert at start: %q, %v", r2.String(), err)
	}
	r3, err := r.Insert(r.Len(), "!")
	if err != nil || r3.String() != "world!" {
		t.Errorf("Insert at end: %q, %v", r3.String(), err)
	}
}

func TestInsertRejectsOutOfRangePosition(t *testing.T) {
	r, _ := FromString("hello")
	if _, err := r.Insert(-1, "x"); err != PreconditionViolation {
		t.Errorf("expected PreconditionViolation, got %v", err)
	}
	if _, err := r.Insert(r.Len()+1, "x"); err != PreconditionViolation {
		t.Errorf("expected PreconditionViolation, got %v", err)
	}
}

func TestInsertRejectsNonGraphemeBoundary(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) is a single grapheme cluster;
	// byte offset 1 falls inside it.
	r, _ := FromString("éx")
	if _, err := r.Insert(1, "y"); err != PreconditionViolation {
		t.Errorf("expected PreconditionViolation, got %v", err)
	}
}

func TestInsertRenormalizesAcrossTheSplice(t *testing.T) {
	// Inserting a combining mark right after a bare base letter leaves the
	// splice decomposed; Insert must renormalize it.
	r, _ := FromString("e")
	r2, err := r.Insert(1, "́") // combining acute accent
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	want := "é" // é, precomposed
	if r2.String() != want {
		t.Errorf("Insert() = %q (% x), want %q (% x)", r2.String(), r2.String(), want, want)
	}
}

func TestErase(t *testing.T) {
	r, _ := FromString("hello, world")
	r2, err := r.Erase(5, 6)
	if err != nil {
		t.Fatalf("Erase error: %v", err)
	}
	if got, want := r2.String(), "hello world"; got != want {
		t.Errorf("Erase() = %q, want %q", got, want)
	}
}

func TestEraseEmptyRangeIsNoop(t *testing.T) {
	r, _ := FromString("hello")
	r2, err := r.Erase(2, 2)
	if err != nil || r2.String() != "hello" {
		t.Errorf("Erase(2,2) = %q, %v", r2.String(), err)
	}
}

func TestEraseRejectsNonGraphemeBoundary(t *testing.T) {
	r, _ := FromString("éx")
	if _, err := r.Erase(0, 1); err != PreconditionViolation {
		t.Errorf("expected PreconditionViolation, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	r, _ := FromString("hello world")
	r2, err := r.Replace(6, 11, "there")
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if got, want := r2.String(), "hello there"; got != want {
		t.Errorf("Replace() = %q, want %q", got, want)
	}
}

func TestIsGraphemeBoundary(t *testing.T) {
	r, _ := FromString("éx")
	if !r.IsGraphemeBoundary(0) {
		t.Error("offset 0 should always be a boundary")
	}
	if r.IsGraphemeBoundary(1) {
		t.Error("offset 1 splits a combining sequence")
	}
	if !r.IsGraphemeBoundary(3) {
		t.Error("offset 3 should be a boundary (between clusters)")
	}
	if !r.IsGraphemeBoundary(r.Len()) {
		t.Error("end of rope should always be a boundary")
	}
}

func TestValidateUTF8(t *testing.T) {
	if !ValidateUTF8("hello world") {
		t.Error("valid UTF-8 rejected")
	}
	if ValidateUTF8("ab\xffcd") {
		t.Error("invalid UTF-8 accepted")
	}
}

func TestInsertEraseRoundTrip(t *testing.T) {
	f := func(s string, pos int) bool {
		r, err := FromString(s)
		if err != nil {
			return true // FromString's default mode never errors; guard anyway
		}
		if r.Len() == 0 {
			return true
		}
		pos = ((pos % (r.Len() + 1)) + (r.Len() + 1)) % (r.Len() + 1)
		if !r.IsGraphemeBoundary(pos) {
			return true // non-boundary positions are Insert/Erase's job to reject, not this property's
		}
		withIns, err := r.Insert(pos, "Z")
		if err != nil {
			return false
		}
		back, err := withIns.Erase(pos, pos+1)
		if err != nil {
			return false
		}
		return back.String() == r.String()
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestConcatSliceRoundTrip(t *testing.T) {
	f := func(a, b string) bool {
		ra, _ := FromString(a)
		rb, _ := FromString(b)
		joined := ra.Concat(rb)
		if joined.Len() != ra.Len()+rb.Len() {
			return false
		}
		left := joined.Slice(0, ra.Len())
		right := joined.Slice(ra.Len(), joined.Len())
		return left.String() == ra.String() && right.String() == rb.String()
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestBuildBalancedTreeHeight(t *testing.T) {
	// A tree built from many leaves should have height proportional to
	// log_MaxChildren(leaf count), not to the leaf count itself.
	var leaves []NodePtr
	for i := 0; i < 1000; i++ {
		leaves = append(leaves, nodePtr(newLeafNode(ownedLeaf(text.NewTextUnchecked("x")))))
	}
	root := buildBalanced(leaves)
	height := treeHeight(root)
	if height > 6 {
		t.Errorf("tree height %d too large for 1000 leaves with MaxChildren=%d", height, MaxChildren)
	}
}

func treeHeight(np NodePtr) int {
	if np.n == nil || np.n.isLeaf {
		return 1
	}
	maxChild := 0
	for _, c := range np.n.children {
		if h := treeHeight(c); h > maxChild {
			maxChild = h
		}
	}
	return maxChild + 1
}
