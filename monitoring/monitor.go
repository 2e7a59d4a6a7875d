// Package monitoring turns a running program into a server that exposes
// the state of registered containers over HTTP.
package monitoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"reflect"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/structlab/collections"
	"github.com/structlab/collections/analysis"
	"github.com/structlab/collections/monitoring/web"
)

// Monitor exposes registered containers through a web server, allowing
// external inspection of their state while the program runs.
type Monitor struct {
	containers   []collections.Container
	bounded      []collections.Bounded
	portNumber   int
	openBrowser  bool
	perfAnalyzer *analysis.PerfAnalyzer

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserOpen makes StartServer open the dashboard in the default
// browser.
func (m *Monitor) WithBrowserOpen() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterPerfAnalyzer sets the performance analyzer the monitor reports
// from.
func (m *Monitor) RegisterPerfAnalyzer(pa *analysis.PerfAnalyzer) {
	m.perfAnalyzer = pa
}

// RegisterContainer registers a container to be monitored. Bounded
// containers are additionally tracked for occupancy reporting.
func (m *Monitor) RegisterContainer(c collections.Container) {
	m.containers = append(m.containers, c)

	if b, ok := c.(collections.Bounded); ok {
		m.bounded = append(m.bounded, b)
	}
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := NewProgressBar(name, total)

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars)-1)
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	fs := web.GetAssets()
	fServer := http.FileServer(fs)
	r.HandleFunc("/api/ops", m.currentOps)
	r.HandleFunc("/api/list_containers", m.listContainers)
	r.HandleFunc("/api/container/{name}", m.listContainerDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/levels", m.listLevels)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(fServer)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring containers with %s\n", url)

	if m.openBrowser {
		err = browser.OpenURL(url)
		dieOnErr(err)
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) currentOps(w http.ResponseWriter, _ *http.Request) {
	ops := int64(0)
	if m.perfAnalyzer != nil {
		ops = m.perfAnalyzer.CurrentOp()
	}

	fmt.Fprintf(w, "{\"ops\":%d}", ops)
}

func (m *Monitor) listContainers(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.containers {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "\"%s\"", c.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listContainerDetails(
	w http.ResponseWriter,
	r *http.Request,
) {
	name := mux.Vars(r)["name"]

	container := m.findContainerOr404(w, name)
	if container == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(container)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type fieldReq struct {
	ContainerName string `json:"container_name,omitempty"`
	FieldName     string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	jsonString := mux.Vars(r)["json"]
	req := fieldReq{}

	err := json.Unmarshal([]byte(jsonString), &req)
	dieOnErr(err)

	name := req.ContainerName
	fields := strings.Split(req.FieldName, ".")

	container := m.findContainerOr404(w, name)
	if container == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(container)
	serializer.SetMaxDepth(1)

	err = serializer.SetEntryPoint(fields)
	dieOnErr(err)

	err = serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) listLevels(w http.ResponseWriter, r *http.Request) {
	sortMethod, limit, offset, err := m.levelsParseParams(r)
	if err != nil {
		w.WriteHeader(400)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	sortedBounded := m.sortAndSelectBounded(sortMethod, limit, offset)

	fmt.Fprint(w, "[")
	for i, b := range sortedBounded {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "{\"container\":\"%s\",\"level\":%d,\"cap\":%d}",
			b.Name(), b.Len(), b.Capacity())
	}

	fmt.Fprint(w, "]")
}

func (*Monitor) levelsParseParams(
	r *http.Request,
) (sort string, limit, offset int, err error) {
	sortMethod := r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = "percent"
	}
	if sortMethod != "level" && sortMethod != "percent" {
		errStr := fmt.Sprintf(
			"Invalid sort method: %s. Allowed values are `level` and `percent`",
			sortMethod)
		return "", 0, 0, errors.New(errStr)
	}

	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = "0"
	}
	limitNumber, err := strconv.Atoi(limitStr)
	if err != nil {
		return sortMethod, 0, 0, err
	}

	offsetStr := r.URL.Query().Get("offset")
	if offsetStr == "" {
		offsetStr = "0"
	}
	offsetNumber, err := strconv.Atoi(offsetStr)
	if err != nil {
		return sortMethod, limitNumber, 0, err
	}

	return sortMethod, limitNumber, offsetNumber, nil
}

func occupancyPercent(b collections.Bounded) float64 {
	return float64(b.Len()) / float64(b.Capacity())
}

func (m *Monitor) sortAndSelectBounded(
	sortMethod string,
	limit, offset int,
) []collections.Bounded {
	sorted := make([]collections.Bounded, len(m.bounded))
	copy(sorted, m.bounded)

	switch sortMethod {
	case "level":
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Len() != sorted[j].Len() {
				return sorted[i].Len() > sorted[j].Len()
			}

			return occupancyPercent(sorted[i]) > occupancyPercent(sorted[j])
		})
	case "percent":
		sort.Slice(sorted, func(i, j int) bool {
			percentI := occupancyPercent(sorted[i])
			percentJ := occupancyPercent(sorted[j])
			if percentI != percentJ {
				return percentI > percentJ
			}

			return sorted[i].Len() > sorted[j].Len()
		})
	default:
		panic("Invalid sort method " + sortMethod)
	}

	return paginate(sorted, limit, offset)
}

func paginate(
	sorted []collections.Bounded,
	limit, offset int,
) []collections.Bounded {
	if offset >= len(sorted) {
		return nil
	}

	sorted = sorted[offset:]

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

type fieldFormatError struct {
}

func (e fieldFormatError) Error() string {
	return "fieldFormatError"
}

func (m *Monitor) walkFields(
	container any,
	fields string,
) (reflect.Value, error) {
	elem := reflect.ValueOf(container)

	fieldNames := strings.Split(fields, ".")

	for len(fieldNames) > 0 {
		switch elem.Kind() {
		case reflect.Ptr, reflect.Interface:
			elem = elem.Elem()
		case reflect.Struct:
			elem = elem.FieldByName(fieldNames[0])
			fieldNames = fieldNames[1:]
		case reflect.Slice:
			index, err := strconv.Atoi(fieldNames[0])
			if err != nil {
				return elem, fieldFormatError{}
			}

			elem = elem.Index(index)
			fieldNames = fieldNames[1:]
		default:
			panic(fmt.Sprintf("kind %d not supported", elem.Kind()))
		}
	}

	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	return elem, nil
}

func (m *Monitor) findContainerOr404(
	w http.ResponseWriter,
	name string,
) collections.Container {
	var container collections.Container
	for _, c := range m.containers {
		if c.Name() == name {
			container = c
		}
	}

	if container == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Container not found"))
		dieOnErr(err)
	}

	return container
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(m.progressBars)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
