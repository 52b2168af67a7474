package htmldom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidate/pkg/form"
)

const signup = `<html><body>
<form id="signup">
  <input type="text" name="name" value="">
  <input type="text" name="email" value="ana.at.example">
  <input type="text" name="age" value="3,5">
  <input type="checkbox" name="agree">
  <textarea name="bio"></textarea>
  <select name="country"><option value="">--</option></select>
</form>
<div id="alert"></div>
</body></html>`

func TestValidator_OnHTML(t *testing.T) {
	doc := mustParse(t, signup)
	v := form.New(doc)

	v.Reset(doc.Query("#signup"))
	for _, el := range doc.Elements(`#signup input[type="text"], #signup textarea, #signup select`) {
		assert.Equal(t, "#999", el.BorderColor())
	}
	checkbox := doc.Elements(`[name="agree"]`)[0]
	_, hasStyle := checkbox.Attr("style")
	assert.False(t, hasStyle)

	ok := v.Required(doc.Query(`[name="name"], [name="email"]`))
	ok = v.Email(doc.Query(`[name="email"]`)) && ok
	ok = v.Numeric(doc.Query(`[name="age"]`)) && ok
	assert.False(t, ok)

	assert.Equal(t, "#f00", doc.Elements(`[name="name"]`)[0].BorderColor())
	assert.Equal(t, "#f00", doc.Elements(`[name="email"]`)[0].BorderColor())
	assert.Equal(t, "#999", doc.Elements(`[name="age"]`)[0].BorderColor())

	alert := doc.Elements("#alert")[0]
	assert.Equal(t,
		"Field <strong>name</strong> is required.<br/>"+
			"Field <strong>email</strong> needs to be an e-mail valid format.<br/>",
		alert.HTML())

	v.Reset(doc.Query("form"))
	assert.Equal(t, "", alert.HTML())
	assert.Equal(t, "#999", doc.Elements(`[name="email"]`)[0].BorderColor())
}

func TestValidator_ResetTargetItself(t *testing.T) {
	doc := mustParse(t, `<input id="a" type="text" value=""><div id="alert">x</div>`)

	form.New(doc).Reset(doc.Query("#a"))

	assert.Equal(t, "", doc.Elements("#a")[0].BorderColor())
	assert.Equal(t, "", doc.Elements("#alert")[0].HTML())
}

func TestValidator_NoAlertBox(t *testing.T) {
	doc := mustParse(t, `<input id="a" name="a" value="">`)

	valid, ok := form.New(doc).Validate(doc.Query("#a"))
	require.True(t, ok)
	assert.False(t, valid)
	assert.Equal(t, "#f00", doc.Elements("#a")[0].BorderColor())
}

func TestValidator_ResetTypeCaseInsensitive(t *testing.T) {
	doc := mustParse(t, `<form><input name="a" type="TEXT"><input name="b" type="Password"></form>`)

	form.New(doc).Reset(doc.Query("form"))

	assert.Equal(t, "#999", doc.Elements(`[name="a"]`)[0].BorderColor())
	assert.Equal(t, "#999", doc.Elements(`[name="b"]`)[0].BorderColor())
}

func TestValidator_RequiredSelect(t *testing.T) {
	doc := mustParse(t, `<form>
<select name="tags" multiple><option value="a">A</option></select>
<select name="list" size="3"><option value="a">A</option></select>
<select name="pick"><option disabled value="">Pick</option><option value="x">X</option></select>
</form><div id="alert"></div>`)

	res := form.New(doc).Run(doc.Query("select"))

	require.True(t, res.Applied)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"tags", "list"}, res.Failures.Fields())
}
