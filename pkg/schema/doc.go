/*
Package schema loads a JSON Schema document and compiles it into a reusable Validator.

The heavy lifting is delegated to github.com/santhosh-tekuri/jsonschema/v6. This
package adds what the engine does not provide on its own:

  - Strict mode: unknown keywords are rejected before compilation.
  - Union types: "type": ["string", "null"] is only accepted when allowed.
  - Violations: the engine's error tree is flattened into ordered domain.Violation records.

# Usage

	doc, err := schema.LoadFile("schema/edm.v0.4.schema.json")
	if err != nil {
		return err
	}

	v, err := schema.Compile("schema/edm.v0.4.schema.json", doc, schema.DefaultOptions())
	if err != nil {
		return err
	}

	instance, err := schema.LoadFile("examples/minimal.ddna.json")
	if err != nil {
		return err
	}
	if violations := v.Validate(instance); len(violations) > 0 {
		fmt.Println(violations.Join(domain.ViolationSeparator))
	}
*/
package schema
