package common

// AuthorizationHeader is the HTTP header carrying the bearer credential on
// outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the token in the Authorization header.
const BearerPrefix = "Bearer "

// StatusCodeOK is the business status code the backend envelope uses for
// success. Anything else on an otherwise-200 response is a business failure.
const StatusCodeOK = "00"

// StatusCodeSessionExpired is the designated business code that invalidates
// the credential regardless of transport status.
const StatusCodeSessionExpired = "SESSION_EXPIRED"

// FilterAll is the sentinel filter value meaning "do not constrain this
// field". It is never transmitted to the backend.
const FilterAll = "all"
