// Copyright (c) 2025 Justin Cranford

package policy

const (
	// URIBasic256Sha256 identifies the Basic256Sha256 security policy.
	URIBasic256Sha256 = "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256"
	// URIBasic256 identifies the Basic256 security policy.
	URIBasic256 = "http://opcfoundation.org/UA/SecurityPolicy#Basic256"
	// URINone identifies the disabled-crypto None policy.
	URINone = "http://opcfoundation.org/UA/SecurityPolicy#None"
)

const (
	// SignatureAlgorithmRSASha256 is the XML-DSig signature algorithm URI
	// used for RSA-PKCS#1-v1.5-SHA-256 under Basic256Sha256.
	SignatureAlgorithmRSASha256 = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha256"
	// SignatureAlgorithmRSASha1 is the XML-DSig signature algorithm URI used
	// for RSA-PKCS#1-v1.5-SHA-1 under Basic256.
	SignatureAlgorithmRSASha1 = "http://www.w3.org/2000/09/xmldsig#rsa-sha1"
)
