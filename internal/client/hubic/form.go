package hubic

import (
	"fmt"

	"golang.org/x/net/html"
)

// findSingleForm locates exactly one form element in the document
// and returns its action attribute.
// The server contract guarantees a single form on the authorization page,
// so zero or multiple matches are treated as a malformed response.
func findSingleForm(doc *html.Node) (string, error) {
	forms := collectElements(doc, "form", func(*html.Node) bool { return true })

	switch len(forms) {
	case 0:
		return "", ErrFormNotFound
	case 1:
		// Fall through to attribute extraction.
	default:
		return "", fmt.Errorf("%w: %d", ErrMultipleForms, len(forms))
	}

	action, ok := attributeValue(forms[0], "action")
	if !ok || action == "" {
		return "", ErrFormActionMissing
	}

	return action, nil
}

// findSingleNamedInput locates exactly one input element with the given name
// and returns its value attribute. A missing value attribute yields the empty
// string, matching how browsers submit valueless inputs.
func findSingleNamedInput(doc *html.Node, name string) (string, error) {
	inputs := collectElements(doc, "input", func(n *html.Node) bool {
		inputName, ok := attributeValue(n, "name")

		return ok && inputName == name
	})

	switch len(inputs) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrInputNotFound, name)
	case 1:
		// Fall through to attribute extraction.
	default:
		return "", fmt.Errorf("%w: %q (%d matches)", ErrMultipleInputs, name, len(inputs))
	}

	value, _ := attributeValue(inputs[0], "value")

	return value, nil
}

// collectElements walks the document tree and gathers element nodes
// with the given tag name that satisfy the match predicate.
func collectElements(node *html.Node, tag string, match func(*html.Node) bool) []*html.Node {
	var result []*html.Node

	if node.Type == html.ElementNode && node.Data == tag && match(node) {
		result = append(result, node)
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		result = append(result, collectElements(child, tag, match)...)
	}

	return result
}

// attributeValue returns the value of the named attribute of an element node.
func attributeValue(node *html.Node, name string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}

	return "", false
}
