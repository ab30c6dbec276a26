package cas

import (
	"bufio"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/trainrec-backend/internal/config"
)

// maxResponseBytes caps how much of a validation response is read.
const maxResponseBytes = 1 << 20

// protocol describes one CAS protocol version.
type protocol struct {
	endpoint    string
	logoutParam string
	parse       func(body []byte) Result
}

// protocols is keyed by the CAS_VERSION setting.
var protocols = map[string]protocol{
	"1": {endpoint: "validate", logoutParam: "url", parse: parseV1},
	"2": {endpoint: "proxyValidate", logoutParam: "url", parse: parseXML},
	"3": {endpoint: "p3/proxyValidate", logoutParam: "service", parse: parseXML},
}

const defaultVersion = "2"

// Result is the outcome of a ticket validation. OK is false for every
// response other than an explicit authenticationSuccess with a user.
type Result struct {
	OK          bool
	Username    string
	Attributes  map[string]string
	FailureCode string
}

// Verifier validates CAS service tickets against a CAS server.
type Verifier struct {
	serverURL  string
	version    string
	proto      protocol
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a CAS verifier. An unknown version falls back to 2.
func NewVerifier(cfg config.CASConfig, logger *slog.Logger) *Verifier {
	version := cfg.Version
	proto, ok := protocols[version]
	if !ok {
		version = defaultVersion
		proto = protocols[defaultVersion]
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Verifier{
		serverURL:  strings.TrimRight(cfg.ServerURL, "/"),
		version:    version,
		proto:      proto,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "cas", "version", version),
	}
}

// Verify validates ticket for service. A rejected ticket yields a failed
// Result and a nil error; transport problems are returned as errors.
func (v *Verifier) Verify(ctx context.Context, ticket, service string) (Result, error) {
	q := url.Values{}
	q.Set("ticket", ticket)
	q.Set("service", service)
	endpoint := v.serverURL + "/" + v.proto.endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, fmt.Errorf("cas: create request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("cas: validate ticket: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, fmt.Errorf("cas: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		v.log.WarnContext(ctx, "cas validation returned non-200", slog.Int("status", resp.StatusCode))
		return Result{FailureCode: fmt.Sprintf("HTTP_%d", resp.StatusCode)}, nil
	}

	result := v.proto.parse(body)
	if result.OK {
		v.log.DebugContext(ctx, "cas ticket validated", slog.String("username", result.Username))
	} else {
		v.log.InfoContext(ctx, "cas ticket rejected", slog.String("code", result.FailureCode))
	}

	return result, nil
}

// LoginURL returns the CAS login URL that sends the browser back to service.
func (v *Verifier) LoginURL(service string) string {
	q := url.Values{}
	q.Set("service", service)
	return v.serverURL + "/login?" + q.Encode()
}

// LogoutURL returns the CAS logout URL, passing next through when set.
func (v *Verifier) LogoutURL(next string) string {
	u := v.serverURL + "/logout"
	if next == "" {
		return u
	}
	q := url.Values{}
	q.Set(v.proto.logoutParam, next)
	return u + "?" + q.Encode()
}

// Version returns the protocol version in use.
func (v *Verifier) Version() string {
	return v.version
}

// parseV1 handles the plain-text protocol: "yes\n<user>\n" or "no\n\n".
func parseV1(body []byte) Result {
	sc := bufio.NewScanner(bytes.NewReader(body))
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if len(lines) >= 2 && lines[0] == "yes" && lines[1] != "" {
		return Result{OK: true, Username: lines[1]}
	}
	return Result{FailureCode: "INVALID_TICKET"}
}

type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

func (n *xmlNode) child(local string) *xmlNode {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *xmlNode) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// parseXML handles the protocol 2 and 3 serviceResponse documents.
// Anything other than a well-formed authenticationSuccess with a non-empty
// user is a failure.
func parseXML(body []byte) Result {
	var root xmlNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return Result{FailureCode: "MALFORMED_RESPONSE"}
	}
	if len(root.Nodes) == 0 {
		return Result{FailureCode: "EMPTY_RESPONSE"}
	}

	first := &root.Nodes[0]
	if !strings.HasSuffix(first.XMLName.Local, "authenticationSuccess") {
		code := "UNKNOWN"
		if strings.HasSuffix(first.XMLName.Local, "authenticationFailure") {
			if c := strings.TrimSpace(first.attr("code")); c != "" {
				code = c
			}
		}
		return Result{FailureCode: code}
	}

	user := first.child("user")
	if user == nil || strings.TrimSpace(user.Content) == "" {
		return Result{FailureCode: "EMPTY_USER"}
	}

	result := Result{OK: true, Username: strings.TrimSpace(user.Content)}
	if attrs := first.child("attributes"); attrs != nil && len(attrs.Nodes) > 0 {
		result.Attributes = make(map[string]string, len(attrs.Nodes))
		for _, a := range attrs.Nodes {
			result.Attributes[a.XMLName.Local] = strings.TrimSpace(a.Content)
		}
	}

	return result
}
