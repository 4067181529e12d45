package output

// artifactSchema is the JSON Schema every artifact must satisfy before
// decoding. It guards the query side against hand-edited or truncated
// catalog files.
const artifactSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "generatedAt", "books"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "generatedAt": {"type": "string"},
    "runId": {"type": "string"},
    "defaultBook": {"type": "string"},
    "books": {
      "type": "object",
      "additionalProperties": {"$ref": "#/$defs/book"}
    }
  },
  "$defs": {
    "book": {
      "type": "object",
      "required": ["totalPages", "answerKeyTemplate", "pages"],
      "properties": {
        "totalPages": {"type": "integer", "minimum": 1},
        "answerKeyTemplate": {"type": "string"},
        "pages": {
          "type": "array",
          "items": {"$ref": "#/$defs/page"}
        }
      }
    },
    "page": {
      "type": "object",
      "required": ["num", "type"],
      "properties": {
        "num": {"type": "integer", "minimum": 1},
        "type": {"enum": ["list", "matchup", "text", "teams"]},
        "title": {"type": "string"},
        "description": {"type": "string"},
        "content": {"type": "string"},
        "items": {"$ref": "#/$defs/items"},
        "matchupItems": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["centerText", "context"],
            "properties": {
              "centerText": {"type": "string"},
              "context": {"type": "string"}
            }
          }
        },
        "columns": {"type": "integer", "minimum": 1},
        "answerKeyUrl": {"type": "string"},
        "actionContent": {
          "type": "object",
          "required": ["content", "position", "rotation", "icon"],
          "properties": {
            "content": {"type": "string"},
            "position": {"enum": ["left", "right"]},
            "rotation": {"type": "integer"},
            "icon": {"type": "string"}
          }
        }
      }
    },
    "items": {
      "type": "object",
      "properties": {
        "generator": {"enum": ["yearsDescending", "ranks"]},
        "start": {"type": "integer"},
        "count": {"type": "integer", "minimum": 0, "maximum": 1000},
        "literal": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "number": {"type": "integer"},
              "text": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`
