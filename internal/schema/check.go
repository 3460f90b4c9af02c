package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/entityref"
)

var (
	entityNamePattern = regexp.MustCompile(`^([A-Za-z0-9][-_.]?)*[A-Za-z0-9]$`)
	tagPattern        = regexp.MustCompile(`^[a-z0-9:+#]+(-[a-z0-9:+#]+)*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "entityname", func(fl validator.FieldLevel) bool {
		return entityNamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "tagname", func(fl validator.FieldLevel) bool {
		return tagPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("schema: register %q: %v", tag, err))
	}
}

// Check returns every structural finding for e, in a stable order:
// metadata first, then required spec fields, then unused reference fields.
func Check(e *catalog.Entity) []catalog.Issue {
	var issues []catalog.Issue

	md := metadataRules{
		Name:      e.Metadata.Name,
		Namespace: e.Metadata.Namespace,
		Tags:      e.Metadata.Tags,
	}
	for _, l := range e.Metadata.Links {
		md.Links = append(md.Links, linkRules{URL: l.URL})
	}
	issues = append(issues, run("metadata", md)...)

	if rules := specRules(e); rules != nil {
		issues = append(issues, run("spec", rules)...)
	}

	issues = append(issues, unusedFields(e)...)
	return issues
}

func specRules(e *catalog.Entity) any {
	s := &e.Spec
	switch e.Kind {
	case entityref.KindComponent:
		return componentRules{Type: s.Type, Lifecycle: s.Lifecycle, Owner: s.Owner}
	case entityref.KindAPI:
		return apiRules{Type: s.Type, Lifecycle: s.Lifecycle, Owner: s.Owner, Definition: s.Definition}
	case entityref.KindResource:
		return resourceRules{Type: s.Type, Owner: s.Owner}
	case entityref.KindSystem, entityref.KindDomain:
		return ownedRules{Owner: s.Owner}
	case entityref.KindGroup:
		return groupRules{Type: s.Type}
	case entityref.KindLocation:
		return locationRules{Target: s.Target, Targets: s.Targets}
	}
	return nil
}

func unusedFields(e *catalog.Entity) []catalog.Issue {
	used, known := usedFields[e.Kind]
	if !known {
		return []catalog.Issue{{
			Path:    "kind",
			Message: fmt.Sprintf("unknown kind %q", string(e.Kind)),
		}}
	}

	var issues []catalog.Issue
	for _, f := range catalog.Fields() {
		if len(e.Refs(f)) == 0 || slices.Contains(used, f.Name()) {
			continue
		}
		issues = append(issues, catalog.Issue{
			Path:    "spec." + f.Name(),
			Message: fmt.Sprintf("not used by kind %s", e.Kind.Title()),
		})
	}
	return issues
}

func run(prefix string, rules any) []catalog.Issue {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []catalog.Issue{{Path: prefix, Message: err.Error()}}
	}

	issues := make([]catalog.Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, catalog.Issue{
			Path:    fieldPath(prefix, fe.Namespace()),
			Message: message(fe),
		})
	}
	return issues
}

// fieldPath swaps the rules struct name at the head of ns for prefix.
func fieldPath(prefix, ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return prefix + "." + rest
	}
	return prefix
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "required_without":
		return "one of target or targets is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "entityname":
		return "must be sequences of [a-zA-Z0-9] separated by any of [-_.]"
	case "tagname":
		return "must be sequences of [a-z0-9:+#] separated by [-]"
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}
