package corelist

// firstReleases maps standard-library import paths to the Go release
// that first shipped them. Derived from the api/go1*.txt files of the
// Go distribution; packages absent here are not part of the standard
// distribution. Internal and vendored packages are intentionally left
// out.
//
// Last updated for Go 1.25.
var firstReleases = map[string]string{
	"archive/tar":          "1",
	"archive/zip":          "1",
	"bufio":                "1",
	"bytes":                "1",
	"compress/bzip2":       "1",
	"compress/flate":       "1",
	"compress/gzip":        "1",
	"compress/lzw":         "1",
	"compress/zlib":        "1",
	"container/heap":       "1",
	"container/list":       "1",
	"container/ring":       "1",
	"crypto":               "1",
	"crypto/aes":           "1",
	"crypto/cipher":        "1",
	"crypto/des":           "1",
	"crypto/dsa":           "1",
	"crypto/ecdsa":         "1",
	"crypto/elliptic":      "1",
	"crypto/hmac":          "1",
	"crypto/md5":           "1",
	"crypto/rand":          "1",
	"crypto/rc4":           "1",
	"crypto/rsa":           "1",
	"crypto/sha1":          "1",
	"crypto/sha256":        "1",
	"crypto/sha512":        "1",
	"crypto/subtle":        "1",
	"crypto/tls":           "1",
	"crypto/x509":          "1",
	"crypto/x509/pkix":     "1",
	"database/sql":         "1",
	"database/sql/driver":  "1",
	"debug/dwarf":          "1",
	"debug/elf":            "1",
	"debug/gosym":          "1",
	"debug/macho":          "1",
	"debug/pe":             "1",
	"encoding/ascii85":     "1",
	"encoding/asn1":        "1",
	"encoding/base32":      "1",
	"encoding/base64":      "1",
	"encoding/binary":      "1",
	"encoding/csv":         "1",
	"encoding/gob":         "1",
	"encoding/hex":         "1",
	"encoding/json":        "1",
	"encoding/pem":         "1",
	"encoding/xml":         "1",
	"errors":               "1",
	"expvar":               "1",
	"flag":                 "1",
	"fmt":                  "1",
	"go/ast":               "1",
	"go/build":             "1",
	"go/doc":               "1",
	"go/parser":            "1",
	"go/printer":           "1",
	"go/scanner":           "1",
	"go/token":             "1",
	"hash":                 "1",
	"hash/adler32":         "1",
	"hash/crc32":           "1",
	"hash/crc64":           "1",
	"hash/fnv":             "1",
	"html":                 "1",
	"html/template":        "1",
	"image":                "1",
	"image/color":          "1",
	"image/draw":           "1",
	"image/gif":            "1",
	"image/jpeg":           "1",
	"image/png":            "1",
	"index/suffixarray":    "1",
	"io":                   "1",
	"io/ioutil":            "1",
	"log":                  "1",
	"log/syslog":           "1",
	"math":                 "1",
	"math/big":             "1",
	"math/cmplx":           "1",
	"math/rand":            "1",
	"mime":                 "1",
	"mime/multipart":       "1",
	"net":                  "1",
	"net/http":             "1",
	"net/http/cgi":         "1",
	"net/http/fcgi":        "1",
	"net/http/httptest":    "1",
	"net/http/httputil":    "1",
	"net/http/pprof":       "1",
	"net/mail":             "1",
	"net/rpc":              "1",
	"net/rpc/jsonrpc":      "1",
	"net/smtp":             "1",
	"net/textproto":        "1",
	"net/url":              "1",
	"os":                   "1",
	"os/exec":              "1",
	"os/signal":            "1",
	"os/user":              "1",
	"path":                 "1",
	"path/filepath":        "1",
	"reflect":              "1",
	"regexp":               "1",
	"regexp/syntax":        "1",
	"runtime":              "1",
	"runtime/cgo":          "1",
	"runtime/debug":        "1",
	"runtime/pprof":        "1",
	"sort":                 "1",
	"strconv":              "1",
	"strings":              "1",
	"sync":                 "1",
	"sync/atomic":          "1",
	"syscall":              "1",
	"testing":              "1",
	"testing/iotest":       "1",
	"testing/quick":        "1",
	"text/scanner":         "1",
	"text/tabwriter":       "1",
	"text/template":        "1",
	"text/template/parse":  "1",
	"time":                 "1",
	"unicode":              "1",
	"unicode/utf16":        "1",
	"unicode/utf8":         "1",
	"unsafe":               "1",
	"go/format":            "1.1",
	"net/http/cookiejar":   "1.1",
	"encoding":             "1.2",
	"image/color/palette":  "1.2",
	"debug/plan9obj":       "1.3",
	"go/constant":          "1.5",
	"go/importer":          "1.5",
	"go/types":             "1.5",
	"mime/quotedprintable": "1.5",
	"runtime/trace":        "1.5",
	"context":              "1.7",
	"plugin":               "1.8",
	"math/bits":            "1.9",
	"crypto/ed25519":       "1.13",
	"hash/maphash":         "1.14",
	"time/tzdata":          "1.15",
	"embed":                "1.16",
	"go/build/constraint":  "1.16",
	"io/fs":                "1.16",
	"runtime/metrics":      "1.16",
	"testing/fstest":       "1.16",
	"debug/buildinfo":      "1.18",
	"net/netip":            "1.18",
	"go/doc/comment":       "1.19",
	"cmp":                  "1.21",
	"log/slog":             "1.21",
	"maps":                 "1.21",
	"slices":               "1.21",
	"testing/slogtest":     "1.21",
	"go/version":           "1.22",
	"math/rand/v2":         "1.22",
	"iter":                 "1.23",
	"structs":              "1.23",
	"unique":               "1.23",
	"crypto/hkdf":          "1.24",
	"crypto/mlkem":         "1.24",
	"crypto/pbkdf2":        "1.24",
	"crypto/sha3":          "1.24",
	"weak":                 "1.24",
	"testing/synctest":     "1.25",
}
