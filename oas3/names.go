package oas3

// Object names used to label annotations.
const (
	openAPIObject        = "OpenAPI Object"
	infoObject           = "Info Object"
	componentsObject     = "Components Object"
	schemaObject         = "Schema Object"
	securitySchemeObject = "Security Scheme Object"
	oauthFlowsObject     = "OAuth Flows Object"
	oauthFlowObject      = "OAuth Flow Object"
	pathsObject          = "Paths Object"
	pathItemObject       = "Path Item Object"
	operationObject      = "Operation Object"
	responsesObject      = "Responses Object"
	responseObject       = "Response Object"
	mediaTypeObject      = "Media Type Object"
)

// Component categories.
const (
	categorySchemas         = "schemas"
	categoryParameters      = "parameters"
	categoryResponses       = "responses"
	categoryRequestBodies   = "requestBodies"
	categoryHeaders         = "headers"
	categoryExamples        = "examples"
	categorySecuritySchemes = "securitySchemes"
	categoryLinks           = "links"
	categoryCallbacks       = "callbacks"
)

// componentCategories lists every category of a Components Object in
// document order.
var componentCategories = []string{
	categorySchemas,
	categoryResponses,
	categoryParameters,
	categoryExamples,
	categoryRequestBodies,
	categoryHeaders,
	categorySecuritySchemes,
	categoryLinks,
	categoryCallbacks,
}

// Element kinds of the API Elements output.
const (
	kindCategory      = "category"
	kindCopy          = "copy"
	kindDataStructure = "dataStructure"
	kindResource      = "resource"
	kindTransition    = "transition"
	kindTransaction   = "httpTransaction"
	kindRequest       = "httpRequest"
	kindResponse      = "httpResponse"
	kindAsset         = "asset"

	kindBasicScheme = "Basic Authentication Scheme"
	kindTokenScheme = "Token Authentication Scheme"
	kindOAuth2      = "OAuth2 Scheme"
)

// Element classes of the API Elements output.
const (
	classAPI            = "api"
	classDataStructures = "dataStructures"
	classAuthSchemes    = "authSchemes"
	classMessageBody    = "messageBody"
	classGenerated      = "generated"
)
