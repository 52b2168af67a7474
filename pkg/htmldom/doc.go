// Package htmldom provides a small mutable view over parsed HTML documents so
// that form validation can run without a browser.
//
// Documents are parsed with golang.org/x/net/html and queried with CSS
// selectors compiled by github.com/andybalholm/cascadia. Document and Element
// implement form.Document and form.Element:
//
//	doc, err := htmldom.ParseString(page)
//	if err != nil {
//		return err
//	}
//	v := form.New(doc)
//	v.Reset(doc.Query("form"))
//	ok := v.Required(doc.Query("#signup input[name]"))
//	fmt.Println(ok, doc.String())
//
// Invalid selectors match nothing. Element.Find only searches descendants.
package htmldom
