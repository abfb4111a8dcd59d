package ir

import (
	"testing"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("root")},
		{Key: "id", Val: FromInt(7)},
		{Key: "children", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("leaf \"q\" <b> &")}}),
			FromBool(false),
			Null(),
		})},
		{Key: "w.eird", Val: FromFloat(1.5)},
	})
}

func TestToJSON(t *testing.T) {
	d, err := ToJSON(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"root","id":7,"children":[{"name":"leaf \"q\" <b> &"},false,null],"w.eird":1.5}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
	d, err = ToJSON(FromKeyVals(nil))
	if err != nil || string(d) != "{}" {
		t.Errorf("got %s, %v", d, err)
	}
}

func TestGetAndPath(t *testing.T) {
	y := sample()
	kids := Get(y, "children")
	if kids == nil || kids.Type != ArrayType {
		t.Fatalf("children not found")
	}
	leafName := Get(kids.Values[0], "name")
	if leafName == nil {
		t.Fatal("leaf name not found")
	}
	if got := leafName.Path(); got != "$.children[0].name" {
		t.Errorf("got %q", got)
	}
	if got := Get(y, "w.eird").Path(); got != "$.'w.eird'" {
		t.Errorf("got %q", got)
	}
	if Get(y, "absent") != nil {
		t.Error("expected nil for absent field")
	}
	if Get(FromString("x"), "name") != nil {
		t.Error("expected nil for non-object")
	}
}
