package xmltree_test

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/adamwoolhether/crmtext/xmltree"
)

func TestParse(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<response op="getcustbystatus" count="2">
	<status>OK</status>
	<customers>
		<customer id="1"><phone>15551230001</phone></customer>
		<customer id="2"><phone>15551230002</phone></customer>
	</customers>
	<!-- ignored -->
</response>`

	root, err := xmltree.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if root.Name() != "response" {
		t.Errorf("exp root response, got %q", root.Name())
	}

	expAttrs := []xmltree.Attr{{Name: "op", Value: "getcustbystatus"}, {Name: "count", Value: "2"}}
	if diff := cmp.Diff(expAttrs, root.Attrs()); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}

	if v, ok := root.Attr("count"); !ok || v != "2" {
		t.Errorf("exp count=2, got %q %v", v, ok)
	}
	if _, ok := root.Attr("missing"); ok {
		t.Error("exp missing attr to be absent")
	}

	if got := root.Child("status").Text(); got != "OK" {
		t.Errorf("exp status OK, got %q", got)
	}

	customers := root.Child("customers").ChildrenNamed("customer")
	if len(customers) != 2 {
		t.Fatalf("exp 2 customers, got %d", len(customers))
	}

	var phones []string
	for _, c := range customers {
		phones = append(phones, c.Child("phone").Text())
	}
	if diff := cmp.Diff([]string{"15551230001", "15551230002"}, phones); diff != "" {
		t.Errorf("phones mismatch (-want +got):\n%s", diff)
	}

	if got := root.Find("customers", "customer", "phone").Text(); got != "15551230001" {
		t.Errorf("exp first phone via Find, got %q", got)
	}
	if root.Find("customers", "nope") != nil {
		t.Error("exp nil for missing path")
	}
	if root.Find() != root {
		t.Error("exp empty path to return the element itself")
	}
}

func TestParse_StatusExample(t *testing.T) {
	root, err := xmltree.ParseBytes([]byte(`<response><status>OK</status></response>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("exp 1 child, got %d", len(children))
	}
	if children[0].Name() != "status" || children[0].Text() != "OK" {
		t.Errorf("exp status=OK, got %s=%q", children[0].Name(), children[0].Text())
	}
}

func TestParse_ByteOrderMark(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "with declaration", doc: "\xEF\xBB\xBF<?xml version=\"1.0\"?><response><status>OK</status></response>"},
		{name: "without declaration", doc: "\xEF\xBB\xBF<response><status>OK</status></response>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := xmltree.ParseBytes([]byte(tc.doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			if root.Name() != "response" || root.Child("status").Text() != "OK" {
				t.Errorf("unexpected tree: %s", root)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		doc    string
		expErr error
	}{
		{name: "empty", doc: "", expErr: xmltree.ErrEmptyDocument},
		{name: "whitespace", doc: "  \n ", expErr: xmltree.ErrEmptyDocument},
		{name: "plain text", doc: "Internal Server Error", expErr: xmltree.ErrTextOutsideRoot},
		{name: "two roots", doc: "<a/><b/>", expErr: xmltree.ErrMultipleRoots},
		{name: "unclosed", doc: "<response><status>OK</status>"},
		{name: "mismatched", doc: "<response></status>"},
		{name: "bad attr", doc: `<response a=1/>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := xmltree.Parse(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatalf("exp error, got root %v", root)
			}
			if root != nil {
				t.Error("exp nil root on error")
			}

			if tc.expErr != nil && !errors.Is(err, tc.expErr) {
				t.Errorf("exp %v, got: %v", tc.expErr, err)
			}

			if tc.expErr == nil {
				var se *xml.SyntaxError
				if !errors.As(err, &se) {
					t.Errorf("exp *xml.SyntaxError, got: %T %v", err, err)
				}
			}
		})
	}
}

func TestParse_Charset(t *testing.T) {
	// "caf\xe9" is "café" in ISO-8859-1.
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><response><msg>caf\xe9</msg></response>"

	root, err := xmltree.ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := root.Child("msg").Text(); got != "café" {
		t.Errorf("exp café, got %q", got)
	}
}

func TestElement_ReadOnly(t *testing.T) {
	root, err := xmltree.ParseBytes([]byte(`<r a="1"><c/></r>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	attrs := root.Attrs()
	attrs[0].Value = "changed"
	children := root.Children()
	children[0] = nil

	if v, _ := root.Attr("a"); v != "1" {
		t.Errorf("attrs mutated through copy: %q", v)
	}
	if root.Child("c") == nil {
		t.Error("children mutated through copy")
	}
}

func TestElement_NilSafe(t *testing.T) {
	var el *xmltree.Element

	if el.Name() != "" || el.Text() != "" || el.Child("x") != nil || el.Find("x") != nil {
		t.Error("exp zero values from nil element")
	}
	if _, ok := el.Attr("x"); ok {
		t.Error("exp no attr on nil element")
	}
}

func TestElement_Walk(t *testing.T) {
	root, err := xmltree.ParseBytes([]byte(`<a><b><c/></b><d/></a>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var visited []string
	root.Walk(func(el *xmltree.Element, depth int) bool {
		visited = append(visited, strings.Repeat("-", depth)+el.Name())
		return el.Name() != "b"
	})

	if diff := cmp.Diff([]string{"a", "-b", "-d"}, visited); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestElement_Marshal(t *testing.T) {
	root, err := xmltree.ParseBytes([]byte(`<response z="1" a="2"><status>OK</status><id>7</id></response>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	t.Run("xml", func(t *testing.T) {
		exp := `<response z="1" a="2"><status>OK</status><id>7</id></response>`
		if diff := cmp.Diff(exp, root.String()); diff != "" {
			t.Errorf("xml mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("xml nested", func(t *testing.T) {
		doc := `<response><customers count="1"><customer id="7"><phone>155</phone></customer></customers></response>`
		nested, err := xmltree.ParseBytes([]byte(doc))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		if diff := cmp.Diff(doc, nested.String()); diff != "" {
			t.Errorf("xml mismatch (-want +got):\n%s", diff)
		}

		b, err := xml.MarshalIndent(nested, "", "  ")
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		exp := `<response>
  <customers count="1">
    <customer id="7">
      <phone>155</phone>
    </customer>
  </customers>
</response>`
		if diff := cmp.Diff(exp, string(b)); diff != "" {
			t.Errorf("indented xml mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json", func(t *testing.T) {
		b, err := json.Marshal(root)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		exp := `{"name":"response","attrs":[{"name":"z","value":"1"},{"name":"a","value":"2"}],` +
			`"children":[{"name":"status","text":"OK"},{"name":"id","text":"7"}]}`
		if diff := cmp.Diff(exp, string(b)); diff != "" {
			t.Errorf("json mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		b, err := yaml.Marshal(root)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		exp := `name: response
attrs:
    z: "1"
    a: "2"
children:
    - name: status
      text: OK
    - name: id
      text: "7"
`
		if diff := cmp.Diff(exp, string(b)); diff != "" {
			t.Errorf("yaml mismatch (-want +got):\n%s", diff)
		}
	})
}
