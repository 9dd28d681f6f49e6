package resources

// RegionDriver discovers the deployment targets for fan-out. The build
// region plus every other returned region form the fan-out set.
//
//counterfeiter:generate . RegionDriver
type RegionDriver interface {
	List() ([]string, error)
}
