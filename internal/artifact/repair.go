package artifact

import "strings"

// EntrypointBlock is the standard run block appended to backends that import
// the runtime but never invoke it.
const EntrypointBlock = "\n\nif __name__ == \"__main__\":\n    uvicorn.run(app, host=\"0.0.0.0\", port=8080)\n"

// RepairBackend applies narrowly-targeted deterministic fixes for the
// specific backend defects it recognizes. Repair is best-effort: it does not
// re-validate after patching. Every fix is conditional on the defect still
// being present, so repairing twice changes nothing.
func RepairBackend(code string) string {
	if !strings.Contains(code, "uvicorn.run") {
		code += EntrypointBlock
	}
	return code
}

// RepairFrontend applies the recognized frontend fixes: close a truncated
// document, close a truncated script section, and restore the doctype.
// Like RepairBackend, each fix checks for absence first and the whole
// function is idempotent.
func RepairFrontend(code string) string {
	if !strings.Contains(code, "</script>") && strings.Contains(code, "<script") {
		if strings.Contains(code, "</body>") {
			code = strings.Replace(code, "</body>", "</script>\n</body>", 1)
		} else {
			code += "\n</script>"
		}
	}

	if !strings.Contains(code, "</html>") {
		if !strings.Contains(code, "</body>") {
			code += "\n</body>"
		}
		code += "\n</html>"
	}

	if !strings.HasPrefix(code, "<!DOCTYPE") && !strings.HasPrefix(code, "<!doctype") {
		code = "<!DOCTYPE html>\n" + code
	}

	return code
}
