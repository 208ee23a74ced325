package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeBackend carries every structural marker the backend checklist
// looks for.
const completeBackend = `import uvicorn
from fastapi import FastAPI, HTTPException
from fastapi.middleware.cors import CORSMiddleware
from pydantic import BaseModel, Field

app = FastAPI()
app.add_middleware(CORSMiddleware, allow_origins=["*"])

class Item(BaseModel):
    name: str = Field(...)

db = {}

@app.get("/items")
def list_items():
    return list(db.values())

@app.post("/items")
def create_item(item: Item):
    if item.name in db:
        raise HTTPException(status_code=409)
    db[item.name] = item
    return item

if __name__ == "__main__":
    uvicorn.run(app, host="0.0.0.0", port=8080)
`

// completeFrontend carries every structural marker the frontend checklist
// looks for.
const completeFrontend = `<!DOCTYPE html>
<html>
<head>
<title>Items</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
<button id="refresh">Refresh</button>
<script>
const API_BASE_URL = "http://localhost:8080";
document.addEventListener("DOMContentLoaded", () => {
  fetch(API_BASE_URL + "/items");
});
</script>
</body>
</html>
`

func TestValidateBackend_Complete(t *testing.T) {
	t.Parallel()

	report := ValidateBackend(completeBackend)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.Equal(t, report.TotalChecks, report.ChecksPassed)
}

func TestValidateBackend_Empty(t *testing.T) {
	t.Parallel()

	report := ValidateBackend("")
	assert.False(t, report.Valid)
	assert.Len(t, report.Issues, report.TotalChecks)
	assert.Zero(t, report.ChecksPassed)
}

func TestValidateBackend_MissingEntrypoint(t *testing.T) {
	t.Parallel()

	code := `import uvicorn
from fastapi import FastAPI
from fastapi.middleware.cors import CORSMiddleware
from pydantic import BaseModel

app = FastAPI()
app.add_middleware(CORSMiddleware)

@app.get("/")
def root():
    return {}
`
	report := ValidateBackend(code)
	require.False(t, report.Valid)
	assert.Contains(t, report.Issues, "Missing uvicorn.run() execution block")
	assert.Equal(t, report.TotalChecks-1, report.ChecksPassed)
}

func TestValidateFrontend_Complete(t *testing.T) {
	t.Parallel()

	report := ValidateFrontend(completeFrontend)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
}

func TestValidateFrontend_Truncated(t *testing.T) {
	t.Parallel()

	truncated := `<!DOCTYPE html>
<html>
<head>
<title>Items</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
<script>
document.addEventListener("DOMContentLoaded", () => { fetch("/items")`

	report := ValidateFrontend(truncated)
	require.False(t, report.Valid)
	assert.Contains(t, report.Issues, "Missing closing html tag - code is truncated")
	assert.Contains(t, report.Issues, "Missing closing script tag - JavaScript is truncated")
}
