package agent

// fallbackBackendCode is the static backend substituted when generation
// fails. It satisfies the backend checklist's critical markers and runs
// as-is, so a degraded pipeline still deploys something probeable.
const fallbackBackendCode = `import uvicorn
from fastapi import FastAPI
from fastapi.middleware.cors import CORSMiddleware

app = FastAPI(title="Fallback API")

app.add_middleware(
    CORSMiddleware,
    allow_origins=["*"],
    allow_credentials=True,
    allow_methods=["*"],
    allow_headers=["*"],
)

@app.get("/")
def root():
    return {"message": "API running in fallback mode"}

if __name__ == "__main__":
    uvicorn.run(app, host="0.0.0.0", port=8080)
`

// fallbackFrontendCode is the static frontend substituted when generation
// fails: a minimal page that probes the backend and reports its health.
const fallbackFrontendCode = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Application</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50">
    <div class="container mx-auto px-4 py-8">
        <h1 class="text-3xl font-bold mb-4">Application Running</h1>
        <p class="text-gray-600">Frontend loaded in fallback mode.</p>
        <div id="status" class="mt-4 p-4 bg-white rounded shadow"></div>
    </div>

    <script>
        const API_BASE_URL = 'http://localhost:8080';

        document.addEventListener('DOMContentLoaded', async () => {
            try {
                const response = await fetch(API_BASE_URL);
                const data = await response.json();
                document.getElementById('status').innerHTML =
                    '<p class="text-green-600">Backend API is running</p>' +
                    '<pre class="mt-2 text-sm">' + JSON.stringify(data, null, 2) + '</pre>';
            } catch (error) {
                document.getElementById('status').innerHTML =
                    '<p class="text-red-600">Could not connect to backend</p>' +
                    '<p class="text-sm mt-2">Error: ' + error.message + '</p>';
            }
        });
    </script>
</body>
</html>
`
