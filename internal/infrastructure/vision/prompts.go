package vision

import "fmt"

// extractPrompt asks the vision model for the fixed field list as key-value
// pairs. The model answers in loose markdown; ParseExtractedFields tolerates
// the variations it produces.
const extractPrompt = `Please extract the following details from the image provided and present them as key-value pairs, one per line. Include only the specified fields.
- **Product Name**
- **Packaging Material**
- **Brand Name**
- **Pack Size**
- **Expiry Date**
- **Expiry Date (valid/expired)**
- **Count Confirmation**
- **MRP**
- **Shelf Life Prediction (if applicable)**
`

// buildComparisonPrompt renders the comparison task for the judgment model.
// The contract the parser relies on is lexical: one line per field with one
// of the three literal labels.
func buildComparisonPrompt(userInfo, extractedInfo string) string {
	return fmt.Sprintf(`You are tasked with comparing two sets of product information to determine whether they describe the **same product**. Focus on the following criteria: product name, brand name, packaging material, expiry date, and other attributes. Do not consider price as a major factor for this decision, as it may vary due to offers or discounts. Minor variations in names or formats (e.g., abbreviations or slight differences) are acceptable if they do not change the essence of the product. Here are the two sets of product data:

### Extracted Product Information:
%s
### User Product Information:
%s
### Task:
For each field, compare the two values and determine whether they represent the same product information. Return 'Same' if the field values suggest they refer to the same product, 'Not the Same' if they do not, and 'Close but Needs Clarification' if there is ambiguity. Provide an explanation for each field comparison. After comparing all fields, provide an overall conclusion on whether the two sets of information represent the same product or not.
### Example Format for Each Field Comparison:
'Field Name: Same/Not the Same/Close but Needs Clarification (Extracted: <extracted_value>, User: <user_value>)'.
`, extractedInfo, userInfo)
}
