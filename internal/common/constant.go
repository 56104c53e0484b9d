package common

// AuthorizationHeaderName is the HTTP header used to carry the credential
// token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the credential token in the authorization
// header, per the collaborator's bearer scheme.
const BearerPrefix = "Bearer "
