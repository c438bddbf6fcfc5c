package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
	"github.com/gridfx/gridfx/shader"
)

// vertexLayout is the shared vertex-input contract of the whole pipeline
// family: one Float32x2 position attribute at location 0.
var vertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: gridfx.VertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
	},
}

// pipelines holds the compiled pipeline family for one target format.
//
// The grid pipeline samples the bound texture. The overlay pipelines
// share one module and pipeline layout (push-constant range of
// PushConstantSize bytes, fragment visibility) and differ only in
// primitive topology; the fragment entry point is the configured
// variant (cursor overlay or clip-space diagnostic).
type pipelines struct {
	gridLayout *wgpu.BindGroupLayout

	grid    *wgpu.RenderPipeline // textured quad, triangle list
	points  *wgpu.RenderPipeline // lattice diagnostics, point list
	cells   *wgpu.RenderPipeline // filled cells, triangle list
	overlay *wgpu.RenderPipeline // overlay quads, triangle strip
}

// buildPipelines validates the shader modules and compiles the family
// for the given color target format. Any failure here is a fatal
// configuration error.
func buildPipelines(dev *Device, format wgpu.TextureFormat, diagnostics bool) (*pipelines, error) {
	if err := shader.Validate(); err != nil {
		return nil, err
	}
	device := dev.Handle()

	gridModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "grid.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shader.Grid()},
	})
	if err != nil {
		return nil, fmt.Errorf("render: grid shader module: %w", err)
	}
	defer gridModule.Release()

	overlayModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "overlay.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shader.Overlay()},
	})
	if err != nil {
		return nil, fmt.Errorf("render: overlay shader module: %w", err)
	}
	defer overlayModule.Release()

	gridBGL, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "grid bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: grid bind group layout: %w", err)
	}

	gridPL, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "grid pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{gridBGL},
	})
	if err != nil {
		return nil, fmt.Errorf("render: grid pipeline layout: %w", err)
	}
	defer gridPL.Release()

	overlayPL, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "overlay pipeline layout",
		PushConstantRanges: []wgpu.PushConstantRange{
			{
				Stages: wgpu.ShaderStageFragment,
				Start:  0,
				End:    gridfx.PushConstantSize,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: overlay pipeline layout: %w", err)
	}
	defer overlayPL.Release()

	fragEntry := shader.OverlayFragmentEntry
	if diagnostics {
		fragEntry = shader.DiagnosticFragmentEntry
	}

	p := &pipelines{gridLayout: gridBGL}

	p.grid, err = createPipeline(device, pipelineDesc{
		label:    "grid pipeline",
		layout:   gridPL,
		module:   gridModule,
		fsEntry:  shader.GridFragmentEntry,
		format:   format,
		topology: wgpu.PrimitiveTopologyTriangleList,
		cull:     wgpu.CullModeBack,
	})
	if err != nil {
		return nil, err
	}

	p.points, err = createPipeline(device, pipelineDesc{
		label:    "lattice point pipeline",
		layout:   overlayPL,
		module:   overlayModule,
		fsEntry:  fragEntry,
		format:   format,
		topology: wgpu.PrimitiveTopologyPointList,
		cull:     wgpu.CullModeNone,
	})
	if err != nil {
		return nil, err
	}

	p.cells, err = createPipeline(device, pipelineDesc{
		label:    "cell pipeline",
		layout:   overlayPL,
		module:   overlayModule,
		fsEntry:  fragEntry,
		format:   format,
		topology: wgpu.PrimitiveTopologyTriangleList,
		cull:     wgpu.CullModeBack,
	})
	if err != nil {
		return nil, err
	}

	p.overlay, err = createPipeline(device, pipelineDesc{
		label:    "overlay quad pipeline",
		layout:   overlayPL,
		module:   overlayModule,
		fsEntry:  fragEntry,
		format:   format,
		topology: wgpu.PrimitiveTopologyTriangleStrip,
		cull:     wgpu.CullModeNone,
	})
	if err != nil {
		return nil, err
	}

	gridfx.Logger().Debug("pipeline family compiled",
		"format", format,
		"fragmentVariant", fragEntry,
	)
	return p, nil
}

type pipelineDesc struct {
	label    string
	layout   *wgpu.PipelineLayout
	module   *wgpu.ShaderModule
	fsEntry  string
	format   wgpu.TextureFormat
	topology wgpu.PrimitiveTopology
	cull     wgpu.CullMode
}

// createPipeline compiles one member of the family. Vertex entry point,
// vertex layout, blend (replace), and multisampling are shared; the
// fragment entry point and topology parameterize the variant.
func createPipeline(device *wgpu.Device, d pipelineDesc) (*wgpu.RenderPipeline, error) {
	p, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  d.label,
		Layout: d.layout,
		Vertex: wgpu.VertexState{
			Module:     d.module,
			EntryPoint: shader.VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     d.module,
			EntryPoint: d.fsEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  d.topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  d.cull,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", d.label, err)
	}
	return p, nil
}

// release frees the family's GPU objects.
func (p *pipelines) release() {
	for _, rp := range []*wgpu.RenderPipeline{p.grid, p.points, p.cells, p.overlay} {
		if rp != nil {
			rp.Release()
		}
	}
	if p.gridLayout != nil {
		p.gridLayout.Release()
	}
}
